/*
 * Copyright 2022 CECTC, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

//go:build integration

package testdata

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cectc/dbbind/pkg/config"
)

const (
	rootPassword = "123456"
	database     = "dbbind"
)

type MySQLTestEnvironment struct {
	mysql testcontainers.Container
}

func NewMySQLTestEnvironment(t *testing.T) *MySQLTestEnvironment {
	container, err := newMySql(t, "dbbind-mysql")
	if err != nil {
		t.Fatal(err)
	}
	return &MySQLTestEnvironment{mysql: container}
}

func newMySql(t *testing.T, name string) (testcontainers.Container, error) {
	req := testcontainers.ContainerRequest{
		Name:  name,
		Image: "mysql:8.0",
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": rootPassword,
			"MYSQL_DATABASE":      database,
		},
		ExposedPorts: []string{"3306/tcp"},
		WaitingFor:   wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(3 * time.Minute),
	}
	ctx := context.Background()
	t.Logf("Starting %s", name)
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, err
	}
	t.Logf("Started %s", name)
	return container, err
}

func (environment *MySQLTestEnvironment) Shutdown(t *testing.T) {
	minute := time.Minute
	if err := environment.mysql.Stop(context.Background(), &minute); err != nil {
		t.Logf("Shutdown dbbind-mysql failed, err: %v", err)
	}
	if err := environment.mysql.Terminate(context.Background()); err != nil {
		t.Logf("Terminate dbbind-mysql failed, err: %v", err)
	}
}

// DataSource describes the database of the running container.
func (environment *MySQLTestEnvironment) DataSource(t *testing.T) *config.DataSource {
	port, err := environment.mysql.MappedPort(context.Background(), "3306/tcp")
	if err != nil {
		t.Fatal(err)
	}
	return &config.DataSource{
		Name:    database,
		Backend: config.MySQL,
		DSN:     fmt.Sprintf("root:%s@tcp(localhost:%d)/%s?loc=UTC", rootPassword, port.Int(), database),
	}
}
