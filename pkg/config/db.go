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

package config

import (
	"bytes"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

type (
	// Backend selects the protocol driver a data source is reached through.
	Backend int

	DataSource struct {
		Name    string  `yaml:"name" mapstructure:"name"`
		Backend Backend `yaml:"backend" mapstructure:"backend"`
		DSN     string  `yaml:"dsn" mapstructure:"dsn"`
		// AutoCommit leaves every statement in its own transaction.
		AutoCommit bool `yaml:"autocommit" mapstructure:"autocommit"`
		// StatementCacheExpire closes prepared statements unused for this long.
		StatementCacheExpire time.Duration `yaml:"statement_cache_expire" mapstructure:"statement_cache_expire"`
	}

	// Cursor holds the defaults applied to every new cursor.
	Cursor struct {
		ArraySize      int  `yaml:"arraysize" mapstructure:"arraysize"`
		BindArraySize  int  `yaml:"bind_array_size" mapstructure:"bind_array_size"`
		LongBufferSize int  `yaml:"long_buffer_size" mapstructure:"long_buffer_size"`
		LogSQL         bool `yaml:"log_sql" mapstructure:"log_sql"`
	}
)

const (
	Memory Backend = iota
	MySQL
	Postgres
	SQLite
)

func (b Backend) String() string {
	switch b {
	case Memory:
		return "memory"
	case MySQL:
		return "mysql"
	case Postgres:
		return "pgx"
	case SQLite:
		return "sqlite3"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

func (b Backend) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Backend) UnmarshalText(text []byte) error {
	if b == nil {
		return errors.New("can't unmarshal a nil *Backend")
	}
	if !b.unmarshalText(bytes.ToLower(text)) {
		return fmt.Errorf("unrecognized backend: %q", text)
	}
	return nil
}

func (b *Backend) unmarshalText(text []byte) bool {
	switch string(text) {
	case "memory", "":
		*b = Memory
	case "mysql":
		*b = MySQL
	case "pgx", "postgres", "postgresql":
		*b = Postgres
	case "sqlite3", "sqlite":
		*b = SQLite
	default:
		return false
	}
	return true
}
