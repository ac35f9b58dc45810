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

// Package sqlbridge serves the protocol interface from database/sql drivers,
// so the engine can talk to MySQL, PostgreSQL and SQLite.
package sqlbridge

import (
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/atomic"

	"github.com/cectc/dbbind/pkg/config"
	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/protocol"
)

type Option func(*Driver)

// WithStatementCacheExpire closes prepared statements unused for d. Zero keeps
// them until the transaction ends.
func WithStatementCacheExpire(d time.Duration) Option {
	return func(driver *Driver) {
		driver.cacheExpire = d
	}
}

// Driver opens connections through the database/sql driver registered for
// its backend.
type Driver struct {
	protocol.Diagnostics

	backend     config.Backend
	cacheExpire time.Duration
	ids         atomic.Int64
}

func New(backend config.Backend, opts ...Option) *Driver {
	d := &Driver{backend: backend}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewFromDataSource builds the driver a configured data source asks for.
func NewFromDataSource(ds *config.DataSource) *Driver {
	return New(ds.Backend, WithStatementCacheExpire(ds.StatementCacheExpire))
}

func (d *Driver) Name() string {
	return d.backend.String()
}

// ThreadSafe is true: database/sql pools connections and serializes access.
func (d *Driver) ThreadSafe() bool {
	return true
}

func (d *Driver) AllocConn() (protocol.Conn, constant.Return) {
	d.Reset()
	if d.backend == config.Memory {
		return nil, d.Raise(constant.ReturnError, constant.SQLStateNoDriver, "backend %s is not served by database/sql", d.backend)
	}
	return &Conn{driver: d}, constant.ReturnSuccess
}
