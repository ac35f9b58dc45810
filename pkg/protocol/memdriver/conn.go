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

package memdriver

import (
	"context"

	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/protocol"
)

type Conn struct {
	protocol.Diagnostics

	driver     *Driver
	id         int64
	dsn        string
	connected  bool
	freed      bool
	autoCommit bool
}

func (c *Conn) Connect(ctx context.Context, dsn string) constant.Return {
	c.Reset()
	if err := ctx.Err(); err != nil {
		return c.Raise(constant.ReturnError, constant.SQLStateTimeout, "%v", err)
	}
	if c.connected {
		return c.Raise(constant.ReturnError, constant.SQLStateConnectionInUse, "connection name in use")
	}
	c.driver.mu.RLock()
	failure := c.driver.connectFailer
	c.driver.mu.RUnlock()
	if len(failure) > 0 {
		c.Append(failure...)
		return constant.ReturnError
	}
	c.dsn = dsn
	c.connected = true
	return constant.ReturnSuccess
}

func (c *Conn) ConnectedDSN() string {
	return c.dsn
}

func (c *Conn) Disconnect(ctx context.Context) constant.Return {
	c.Reset()
	if !c.connected {
		return c.Raise(constant.ReturnError, constant.SQLStateNotConnected, "connection not open")
	}
	c.connected = false
	return constant.ReturnSuccess
}

func (c *Conn) SetAutoCommit(on bool) constant.Return {
	c.Reset()
	c.autoCommit = on
	return constant.ReturnSuccess
}

// AutoCommit reports the current commit mode.
func (c *Conn) AutoCommit() bool {
	return c.autoCommit
}

func (c *Conn) EndTran(ctx context.Context, completion constant.Completion) constant.Return {
	c.Reset()
	if !c.connected {
		return c.Raise(constant.ReturnError, constant.SQLStateNotConnected, "connection not open")
	}
	if err := ctx.Err(); err != nil {
		return c.Raise(constant.ReturnError, constant.SQLStateTimeout, "%v", err)
	}
	switch completion {
	case constant.Commit:
		c.driver.commits.Inc()
	case constant.Rollback:
		c.driver.rollbacks.Inc()
	default:
		return c.Raise(constant.ReturnError, constant.SQLStateInvalidTranOp, "invalid transaction operation code %d", completion)
	}
	return constant.ReturnSuccess
}

func (c *Conn) AllocStmt() (protocol.Stmt, constant.Return) {
	c.Reset()
	if c.freed {
		return nil, constant.ReturnInvalidHandle
	}
	if !c.connected {
		return nil, c.Raise(constant.ReturnError, constant.SQLStateNotConnected, "connection not open")
	}
	c.driver.openStmts.Inc()
	return newStmt(c), constant.ReturnSuccess
}

func (c *Conn) Free() constant.Return {
	if c.freed {
		return constant.ReturnInvalidHandle
	}
	c.freed = true
	c.driver.openConns.Dec()
	return constant.ReturnSuccess
}
