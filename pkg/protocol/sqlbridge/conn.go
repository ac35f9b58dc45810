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

package sqlbridge

import (
	"context"
	"sync"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jmoiron/sqlx"
	"github.com/patrickmn/go-cache"

	"github.com/cectc/dbbind/pkg/config"
	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/log"
	"github.com/cectc/dbbind/pkg/misc"
	"github.com/cectc/dbbind/pkg/protocol"
)

type preparer interface {
	PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
}

// Conn is a database/sql handle pool seen as one session. With auto commit
// off a transaction is begun by the first statement and ended by EndTran.
type Conn struct {
	protocol.Diagnostics

	driver     *Driver
	db         *sqlx.DB
	tx         *sqlx.Tx
	dsn        string
	autoCommit bool
	freed      bool

	// prepared statements of the current session, keyed by statement text
	prepared *cache.Cache

	// mu guards the transaction and the statement handle set
	mu      sync.Mutex
	handles map[*Stmt]struct{}
}

func normalizeDSN(backend config.Backend, dsn string) (string, error) {
	switch backend {
	case config.MySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return "", err
		}
		cfg.ParseTime = true
		return cfg.FormatDSN(), nil
	case config.Postgres:
		if _, err := pgx.ParseConfig(dsn); err != nil {
			return "", err
		}
	}
	return dsn, nil
}

func (c *Conn) Connect(ctx context.Context, dsn string) constant.Return {
	c.Reset()
	if c.freed {
		return constant.ReturnInvalidHandle
	}
	if c.db != nil {
		return c.Raise(constant.ReturnError, constant.SQLStateConnectionInUse, "connection name in use")
	}
	normalized, err := normalizeDSN(c.driver.backend, dsn)
	if err != nil {
		return c.Raise(constant.ReturnError, constant.SQLStateConnection, "invalid connection string: %v", err)
	}
	db, err := sqlx.Open(c.driver.backend.String(), normalized)
	if err != nil {
		return c.Raise(constant.ReturnError, constant.SQLStateNoDriver, "%v", err)
	}
	if c.driver.backend == config.SQLite {
		// every pooled connection would see its own in-memory database
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return c.fail(err, constant.SQLStateConnection)
	}
	c.db = db
	c.dsn = normalized
	c.prepared = cache.New(c.driver.cacheExpire, 0)
	c.prepared.OnEvicted(func(query string, value interface{}) {
		if err := value.(*sqlx.Stmt).Close(); err != nil {
			log.Debugf("close statement %q: %v", query, err)
		}
	})
	log.Debugf("%s connection opened to %s", c.driver.backend, misc.RemovePassword(normalized))
	return constant.ReturnSuccess
}

func (c *Conn) ConnectedDSN() string {
	return c.dsn
}

func (c *Conn) Disconnect(ctx context.Context) constant.Return {
	c.Reset()
	if c.db == nil {
		return c.Raise(constant.ReturnError, constant.SQLStateNotConnected, "connection not open")
	}
	c.closeCursors()
	if c.tx != nil {
		if err := c.tx.Rollback(); err != nil {
			log.Warnf("rollback on disconnect: %v", err)
		}
		c.tx = nil
	}
	c.flushStatements()
	err := c.db.Close()
	c.db = nil
	if err != nil {
		return c.fail(err, constant.SQLStateGeneralError)
	}
	return constant.ReturnSuccess
}

func (c *Conn) SetAutoCommit(on bool) constant.Return {
	c.Reset()
	if on && c.tx != nil {
		if rc := c.endTran(constant.Commit); rc != constant.ReturnSuccess {
			return rc
		}
	}
	c.autoCommit = on
	return constant.ReturnSuccess
}

func (c *Conn) EndTran(ctx context.Context, completion constant.Completion) constant.Return {
	c.Reset()
	if c.db == nil {
		return c.Raise(constant.ReturnError, constant.SQLStateNotConnected, "connection not open")
	}
	if err := ctx.Err(); err != nil {
		return c.fail(err, constant.SQLStateTimeout)
	}
	if completion != constant.Commit && completion != constant.Rollback {
		return c.Raise(constant.ReturnError, constant.SQLStateInvalidTranOp, "invalid transaction operation code %d", completion)
	}
	return c.endTran(completion)
}

func (c *Conn) endTran(completion constant.Completion) constant.Return {
	if c.tx == nil {
		return constant.ReturnSuccess
	}
	// cursors and statements of the transaction die with it
	c.closeCursors()
	c.flushStatements()
	var err error
	if completion == constant.Commit {
		err = c.tx.Commit()
	} else {
		err = c.tx.Rollback()
	}
	c.tx = nil
	if err != nil {
		return c.fail(err, constant.SQLStateGeneralError)
	}
	return constant.ReturnSuccess
}

func (c *Conn) AllocStmt() (protocol.Stmt, constant.Return) {
	c.Reset()
	if c.freed {
		return nil, constant.ReturnInvalidHandle
	}
	if c.db == nil {
		return nil, c.Raise(constant.ReturnError, constant.SQLStateNotConnected, "connection not open")
	}
	s := newStmt(c)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handles == nil {
		c.handles = make(map[*Stmt]struct{})
	}
	c.handles[s] = struct{}{}
	return s, constant.ReturnSuccess
}

func (c *Conn) releaseStmt(s *Stmt) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.handles, s)
}

func (c *Conn) closeCursors() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for s := range c.handles {
		s.closeRows()
	}
}

func (c *Conn) Free() constant.Return {
	if c.freed {
		return constant.ReturnInvalidHandle
	}
	c.freed = true
	return constant.ReturnSuccess
}

func (c *Conn) session(ctx context.Context) (preparer, error) {
	if c.autoCommit {
		return c.db, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tx == nil {
		tx, err := c.db.BeginTxx(ctx, nil)
		if err != nil {
			return nil, err
		}
		c.tx = tx
	}
	return c.tx, nil
}

// statement returns the prepared statement for query in the current session,
// preparing it on first use.
func (c *Conn) statement(ctx context.Context, query string) (*sqlx.Stmt, error) {
	c.prepared.DeleteExpired()
	if v, ok := c.prepared.Get(query); ok {
		return v.(*sqlx.Stmt), nil
	}
	p, err := c.session(ctx)
	if err != nil {
		return nil, err
	}
	stmt, err := p.PreparexContext(ctx, c.db.Rebind(query))
	if err != nil {
		return nil, err
	}
	c.prepared.SetDefault(query, stmt)
	return stmt, nil
}

func (c *Conn) flushStatements() {
	c.prepared.DeleteExpired()
	for query := range c.prepared.Items() {
		c.prepared.Delete(query)
	}
}

func (c *Conn) fail(err error, fallback string) constant.Return {
	c.Append(diagnose(err, fallback))
	return constant.ReturnError
}
