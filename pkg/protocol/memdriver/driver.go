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

// Package memdriver is a scripted, in-memory implementation of the protocol
// surface. Statements are registered up front with their outcome and every
// execution is recorded for inspection.
package memdriver

import (
	"strings"
	"sync"

	"go.uber.org/atomic"

	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/protocol"
)

// Column is the metadata reported for one result column.
type Column struct {
	Name     string
	SQLType  constant.SQLType
	Size     int
	Scale    int
	Nullable constant.Nullable
}

// Result is one outcome of a statement: a result set when Columns is not
// empty, otherwise an affected row count.
type Result struct {
	Columns      []Column
	Rows         [][]interface{}
	RowsAffected int64
}

// Script describes what executing a statement does.
type Script struct {
	// Results holds the sequence of outcomes walked by MoreResults.
	Results []Result
	// Failure, when set, makes Execute fail with these records.
	Failure []protocol.DiagRecord
	// Outputs are written to output parameters after a successful execute,
	// keyed by 1-based parameter position.
	Outputs map[int]interface{}
}

// Execution records one call to Execute or ExecDirect.
type Execution struct {
	SQL string
	// Params holds the decoded input parameters, one slice per batch row.
	Params [][]interface{}
}

// Driver is the root handle. It is safe for concurrent use; the connection
// and statement handles it creates are not.
type Driver struct {
	protocol.Diagnostics

	mu            sync.RWMutex
	scripts       map[string]*Script
	executions    []Execution
	connectFailer []protocol.DiagRecord

	ids       atomic.Int64
	fetches   atomic.Int64
	commits   atomic.Int64
	rollbacks atomic.Int64
	openConns atomic.Int64
	openStmts atomic.Int64
}

func New() *Driver {
	return &Driver{scripts: make(map[string]*Script)}
}

func normalize(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}

// Script registers the outcome of sql. Whitespace differences are ignored.
func (d *Driver) Script(sql string, s *Script) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scripts[normalize(sql)] = s
}

// Query registers a statement producing a single result set.
func (d *Driver) Query(sql string, columns []Column, rows ...[]interface{}) {
	d.Script(sql, &Script{Results: []Result{{Columns: columns, Rows: rows}}})
}

// Exec registers a statement affecting rowsAffected rows.
func (d *Driver) Exec(sql string, rowsAffected int64) {
	d.Script(sql, &Script{Results: []Result{{RowsAffected: rowsAffected}}})
}

// Fail registers a statement whose execution fails.
func (d *Driver) Fail(sql, sqlState string, nativeError int32, message string) {
	d.Script(sql, &Script{Failure: []protocol.DiagRecord{{SQLState: sqlState, NativeError: nativeError, Message: message}}})
}

// FailConnect makes the next connections fail with the given record.
func (d *Driver) FailConnect(sqlState string, message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.connectFailer = []protocol.DiagRecord{{SQLState: sqlState, Message: message}}
}

func (d *Driver) lookup(sql string) (*Script, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.scripts[normalize(sql)]
	return s, ok
}

func (d *Driver) record(e Execution) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.executions = append(d.executions, e)
}

// Executions returns the recorded executions in order.
func (d *Driver) Executions() []Execution {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Execution, len(d.executions))
	copy(out, d.executions)
	return out
}

// LastExecution returns the most recent execution, if any.
func (d *Driver) LastExecution() (Execution, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if len(d.executions) == 0 {
		return Execution{}, false
	}
	return d.executions[len(d.executions)-1], true
}

// FetchCalls is the number of Fetch calls made on all statements.
func (d *Driver) FetchCalls() int64 { return d.fetches.Load() }

func (d *Driver) Commits() int64 { return d.commits.Load() }

func (d *Driver) Rollbacks() int64 { return d.rollbacks.Load() }

// OpenHandles returns the number of connection and statement handles not yet
// freed.
func (d *Driver) OpenHandles() (conns, stmts int64) {
	return d.openConns.Load(), d.openStmts.Load()
}

func (d *Driver) Name() string { return "memory" }

func (d *Driver) ThreadSafe() bool { return false }

func (d *Driver) AllocConn() (protocol.Conn, constant.Return) {
	d.openConns.Inc()
	return &Conn{driver: d, id: d.ids.Inc(), autoCommit: true}, constant.ReturnSuccess
}
