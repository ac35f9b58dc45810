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

// Package dbapi is the DB-API style surface of the engine: connections,
// cursors and the binding of application values to statement buffers.
package dbapi

import (
	"context"

	"go.uber.org/atomic"

	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/errors"
	"github.com/cectc/dbbind/pkg/log"
	"github.com/cectc/dbbind/pkg/misc"
	"github.com/cectc/dbbind/pkg/protocol"
	"github.com/cectc/dbbind/pkg/types"
)

// Connection is a session with a data source. A Connection must outlive the
// cursors created from it.
type Connection struct {
	driver     protocol.Driver
	conn       protocol.Conn
	registry   *types.Registry
	dsn        string
	autoCommit bool
	opts       *options

	openCursors atomic.Int64
}

// Connect opens a session through driver.
func Connect(ctx context.Context, driver protocol.Driver, dsn string, opts ...Option) (*Connection, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.registry == nil {
		o.registry = types.NewRegistry()
	}

	conn, rc := driver.AllocConn()
	if err := protocol.Check(driver, rc, "Connection.Connect(): allocate connection handle"); err != nil {
		return nil, err
	}
	rc = conn.Connect(ctx, dsn)
	if err := protocol.Check(conn, rc, "Connection.Connect(): connect"); err != nil {
		conn.Free()
		return nil, err
	}
	c := &Connection{
		driver:   driver,
		conn:     conn,
		registry: o.registry,
		dsn:      dsn,
		opts:     o,
	}
	if connected := conn.ConnectedDSN(); connected != "" {
		c.dsn = connected
	}
	if err := c.SetAutoCommit(o.autoCommit); err != nil {
		conn.Disconnect(ctx)
		conn.Free()
		return nil, err
	}
	log.Infof("connected to %s via %s", c.DSN(), driver.Name())
	return c, nil
}

func (c *Connection) isConnected() error {
	if c.conn == nil {
		return errors.NewInterfaceError("not connected")
	}
	return nil
}

// DSN returns the connection string with any password removed.
func (c *Connection) DSN() string {
	return misc.RemovePassword(c.dsn)
}

func (c *Connection) Registry() *types.Registry {
	return c.registry
}

// ThreadSafe reports whether cursors of this connection may be used from
// different goroutines, as declared by the driver.
func (c *Connection) ThreadSafe() bool {
	return c.driver.ThreadSafe()
}

// OpenCursors is the number of cursors created and not yet closed.
func (c *Connection) OpenCursors() int64 {
	return c.openCursors.Load()
}

func (c *Connection) AutoCommit() bool {
	return c.autoCommit
}

func (c *Connection) SetAutoCommit(on bool) error {
	if err := c.isConnected(); err != nil {
		return err
	}
	rc := c.conn.SetAutoCommit(on)
	if err := protocol.Check(c.conn, rc, "Connection.SetAutoCommit()"); err != nil {
		return err
	}
	c.autoCommit = on
	return nil
}

// Cursor creates a cursor with the connection's cursor defaults.
func (c *Connection) Cursor() (*Cursor, error) {
	if err := c.isConnected(); err != nil {
		return nil, err
	}
	stmt, rc := c.conn.AllocStmt()
	if err := protocol.Check(c.conn, rc, "Connection.Cursor(): allocate statement handle"); err != nil {
		return nil, err
	}
	c.openCursors.Inc()
	return newCursor(c, stmt), nil
}

func (c *Connection) endTran(ctx context.Context, completion constant.Completion, where string) error {
	if err := c.isConnected(); err != nil {
		return err
	}
	rc := c.conn.EndTran(ctx, completion)
	return protocol.Check(c.conn, rc, where)
}

func (c *Connection) Commit(ctx context.Context) error {
	return c.endTran(ctx, constant.Commit, "Connection.Commit()")
}

func (c *Connection) Rollback(ctx context.Context) error {
	return c.endTran(ctx, constant.Rollback, "Connection.Rollback()")
}

// Close rolls back any open transaction and ends the session. Any later use
// of the connection or its cursors fails with "not connected".
func (c *Connection) Close(ctx context.Context) error {
	if err := c.isConnected(); err != nil {
		return err
	}
	if err := c.Rollback(ctx); err != nil {
		return err
	}
	rc := c.conn.Disconnect(ctx)
	if err := protocol.Check(c.conn, rc, "Connection.Close(): disconnect"); err != nil {
		return err
	}
	c.conn.Free()
	c.conn = nil
	if n := c.openCursors.Load(); n > 0 {
		log.Warnf("connection to %s closed with %d open cursors", c.DSN(), n)
	} else {
		log.Infof("connection to %s closed", c.DSN())
	}
	return nil
}
