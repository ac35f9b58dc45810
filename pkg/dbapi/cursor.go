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

package dbapi

import (
	"context"

	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/errors"
	"github.com/cectc/dbbind/pkg/log"
	"github.com/cectc/dbbind/pkg/protocol"
	"github.com/cectc/dbbind/pkg/types"
	"github.com/cectc/dbbind/pkg/variable"
)

// RowFactory builds the value returned for a fetched row from its column
// values.
type RowFactory func(values []interface{}) (interface{}, error)

// Cursor executes statements and fetches their results. A Cursor is not safe
// for concurrent use.
type Cursor struct {
	conn     *Connection
	stmt     protocol.Stmt
	registry *types.Registry

	statement     string
	paramVars     []*variable.Variable
	resultVars    []*variable.Variable
	setInputSizes bool
	paramsetSize  int

	arraySize        int
	bindArraySize    int
	fetchArraySize   int
	longBufferSize   int
	outputSize       int
	outputSizeColumn int

	rowFactory RowFactory
	rowCount   int64
	actualRows int
	rowNum     int
	exhausted  bool
	logSQL     bool
}

func newCursor(conn *Connection, stmt protocol.Stmt) *Cursor {
	defaults := conn.opts.cursor
	return &Cursor{
		conn:           conn,
		stmt:           stmt,
		registry:       conn.registry,
		paramsetSize:   1,
		arraySize:      defaults.ArraySize,
		bindArraySize:  defaults.BindArraySize,
		longBufferSize: defaults.LongBufferSize,
		rowCount:       -1,
		logSQL:         defaults.LogSQL,
	}
}

func (c *Cursor) isOpen() error {
	if c.stmt == nil {
		return errors.NewInterfaceError("not open")
	}
	return c.conn.isConnected()
}

func (c *Cursor) Connection() *Connection { return c.conn }

// Statement is the text of the prepared statement, empty if none.
func (c *Cursor) Statement() string { return c.statement }

// RowCount is the number of rows fetched so far for a query, the number of
// affected rows for other statements and -1 before the first execution.
func (c *Cursor) RowCount() int64 { return c.rowCount }

func (c *Cursor) ArraySize() int { return c.arraySize }

// SetArraySize sets the number of rows fetched per round trip and the default
// for FetchMany. It takes effect at the next execution.
func (c *Cursor) SetArraySize(n int) {
	if n < 1 {
		n = 1
	}
	c.arraySize = n
}

func (c *Cursor) BindArraySize() int { return c.bindArraySize }

// SetBindArraySize sets the slot count of Variables made by Var and
// SetInputSizes.
func (c *Cursor) SetBindArraySize(n int) {
	if n < 1 {
		n = 1
	}
	c.bindArraySize = n
}

func (c *Cursor) RowFactory() RowFactory { return c.rowFactory }

// SetRowFactory installs fn for the current result. Preparing another
// statement removes it.
func (c *Cursor) SetRowFactory(fn RowFactory) { c.rowFactory = fn }

func (c *Cursor) LogSQL() bool { return c.logSQL }

func (c *Cursor) SetLogSQL(on bool) { c.logSQL = on }

// Name returns the cursor name known to the driver.
func (c *Cursor) Name() (string, error) {
	if err := c.isOpen(); err != nil {
		return "", err
	}
	name, rc := c.stmt.CursorName()
	if err := protocol.Check(c.stmt, rc, "Cursor.Name()"); err != nil {
		return "", err
	}
	return name, nil
}

func (c *Cursor) SetName(name string) error {
	if err := c.isOpen(); err != nil {
		return err
	}
	rc := c.stmt.SetCursorName(name)
	return protocol.Check(c.stmt, rc, "Cursor.SetName()")
}

// Close releases the statement handle. The cursor cannot be used afterwards.
func (c *Cursor) Close() error {
	if err := c.isOpen(); err != nil {
		return err
	}
	rc := c.stmt.Free()
	if err := protocol.Check(c.stmt, rc, "Cursor.Close()"); err != nil {
		return err
	}
	c.stmt = nil
	c.paramVars = nil
	c.resultVars = nil
	c.conn.openCursors.Dec()
	return nil
}

func (c *Cursor) logStatement(sql string) {
	if c.logSQL {
		log.Debugf("SQL\n%s", sql)
	}
}

// prepare attaches sql to the statement handle. An empty sql reuses the
// prepared statement; the same text is not sent to the driver again. Result
// Variables are always dropped, parameter Variables only when the text changes
// and no input sizes are pinned.
func (c *Cursor) prepare(ctx context.Context, sql string) error {
	if sql == "" && c.statement == "" {
		return errors.NewProgrammingError("no statement specified and no prior statement prepared")
	}
	// discard unfetched rows of the previous execution
	c.stmt.CloseCursor()
	c.resultVars = nil
	if sql == "" || sql == c.statement {
		c.logStatement(c.statement)
		return nil
	}

	c.logStatement(sql)
	c.rowFactory = nil
	c.statement = ""
	rc := c.stmt.Prepare(ctx, sql)
	if err := protocol.Check(c.stmt, rc, "Cursor.Prepare()"); err != nil {
		return err
	}
	c.statement = sql
	if !c.setInputSizes && len(c.paramVars) > 0 {
		c.paramVars = nil
		rc = c.stmt.ResetParams()
		if err := protocol.Check(c.stmt, rc, "Cursor.Prepare(): reset parameters"); err != nil {
			return err
		}
	}
	return nil
}

// Prepare attaches sql to the cursor so that Execute may be called without
// statement text.
func (c *Cursor) Prepare(ctx context.Context, sql string) error {
	if err := c.isOpen(); err != nil {
		return err
	}
	return c.prepare(ctx, sql)
}

func (c *Cursor) setParamsetSize(n int) error {
	if c.paramsetSize == n {
		return nil
	}
	rc := c.stmt.SetAttr(constant.AttrParamsetSize, n)
	if err := protocol.Check(c.stmt, rc, "Cursor.ExecuteMany(): set paramset size"); err != nil {
		return err
	}
	c.paramsetSize = n
	return nil
}

// Execute prepares sql, unless it is empty, binds args as a single row of
// parameters and executes the statement. Args may include Variables made by
// Var, which are bound directly.
func (c *Cursor) Execute(ctx context.Context, sql string, args ...interface{}) error {
	if err := c.isOpen(); err != nil {
		return err
	}
	if err := c.prepare(ctx, sql); err != nil {
		return err
	}
	if err := c.bindParameters(args, 1, 0, false); err != nil {
		return err
	}
	if err := c.setParamsetSize(1); err != nil {
		return err
	}
	return c.afterExecute(c.stmt.Execute(ctx))
}

// ExecuteMany executes sql once for all rows, binding row i of the batch to
// slot i of every parameter Variable. A NULL in any row but the last leaves
// the column's type to be decided by a later row.
func (c *Cursor) ExecuteMany(ctx context.Context, sql string, rows [][]interface{}) error {
	if err := c.isOpen(); err != nil {
		return err
	}
	if rows == nil {
		return errors.NewInterfaceError("expecting a list of sequences")
	}
	if err := c.prepare(ctx, sql); err != nil {
		return err
	}
	numRows := len(rows)
	if numRows == 0 {
		c.rowCount = 0
		return nil
	}
	for i, row := range rows {
		if err := c.bindParameters(row, numRows, i, i < numRows-1); err != nil {
			return err
		}
	}
	if err := c.setParamsetSize(numRows); err != nil {
		return err
	}
	return c.afterExecute(c.stmt.Execute(ctx))
}

// ExecDirect executes sql without preparing it. The prepared statement, the
// parameter Variables and the row factory are discarded first.
func (c *Cursor) ExecDirect(ctx context.Context, sql string) error {
	if err := c.isOpen(); err != nil {
		return err
	}
	c.logStatement(sql)
	c.stmt.CloseCursor()
	c.statement = ""
	c.resultVars = nil
	c.rowFactory = nil
	if len(c.paramVars) > 0 {
		c.paramVars = nil
		rc := c.stmt.ResetParams()
		if err := protocol.Check(c.stmt, rc, "Cursor.ExecDirect(): reset parameters"); err != nil {
			return err
		}
	}
	if err := c.setParamsetSize(1); err != nil {
		return err
	}
	return c.afterExecute(c.stmt.ExecDirect(ctx, sql))
}

// afterExecute interprets the status of an execution: it materializes the
// result set of a query or records the affected row count of anything else.
func (c *Cursor) afterExecute(rc constant.Return) error {
	// statements affecting no rows report no data
	if rc == constant.ReturnNoData {
		c.rowCount = 0
		c.clearPinnedSizes()
		return nil
	}
	if err := protocol.Check(c.stmt, rc, "Cursor.Execute()"); err != nil {
		return err
	}
	if c.resultVars == nil {
		if err := c.prepareResultSet(); err != nil {
			return err
		}
	}
	if c.resultVars == nil {
		count, rc := c.stmt.RowCount()
		if err := protocol.Check(c.stmt, rc, "Cursor.Execute(): row count"); err != nil {
			return err
		}
		c.rowCount = count
	}
	c.clearPinnedSizes()
	return nil
}

// clearPinnedSizes drops the sizes set by SetInputSizes and SetOutputSize
// once an execution has used them.
func (c *Cursor) clearPinnedSizes() {
	c.setInputSizes = false
	c.outputSize = 0
	c.outputSizeColumn = 0
}

// NextSet moves to the next result of the last execution. It reports false
// when there is none.
func (c *Cursor) NextSet(ctx context.Context) (bool, error) {
	if err := c.isOpen(); err != nil {
		return false, err
	}
	rc := c.stmt.MoreResults(ctx)
	if rc == constant.ReturnNoData {
		return false, nil
	}
	if err := protocol.Check(c.stmt, rc, "Cursor.NextSet()"); err != nil {
		return false, err
	}
	c.resultVars = nil
	if err := c.prepareResultSet(); err != nil {
		return false, err
	}
	if c.resultVars == nil {
		count, rc := c.stmt.RowCount()
		if err := protocol.Check(c.stmt, rc, "Cursor.NextSet(): row count"); err != nil {
			return false, err
		}
		c.rowCount = count
	}
	return true, nil
}

// SetInputSizes pins the types of the parameters of the next execution. Each
// entry is nil (decide from the value), an int (a string of that size) or a
// type token accepted by the registry. The created Variables are returned.
func (c *Cursor) SetInputSizes(sizes ...interface{}) ([]*variable.Variable, error) {
	if err := c.isOpen(); err != nil {
		return nil, err
	}
	vars := make([]*variable.Variable, len(sizes))
	for i, token := range sizes {
		var (
			v   *variable.Variable
			err error
		)
		switch t := token.(type) {
		case nil:
			continue
		case int:
			v, err = variable.New(c.registry.Default(), c.bindArraySize, t, 0)
		default:
			desc, rerr := c.registry.ResolveByTypeToken(t)
			if rerr != nil {
				return nil, rerr
			}
			v, err = variable.New(desc, c.bindArraySize, 0, 0)
		}
		if err != nil {
			return nil, err
		}
		vars[i] = v
	}
	if len(c.paramVars) > 0 {
		rc := c.stmt.ResetParams()
		if err := protocol.Check(c.stmt, rc, "Cursor.SetInputSizes()"); err != nil {
			return nil, err
		}
	}
	c.paramVars = vars
	c.setInputSizes = true
	out := make([]*variable.Variable, len(vars))
	copy(out, vars)
	return out, nil
}

// SetOutputSize sets the buffer size of long columns of the next execution,
// of every long column when column is 0 or of the 1-based column only.
func (c *Cursor) SetOutputSize(size, column int) {
	c.outputSize = size
	c.outputSizeColumn = column
}

// Var creates a Variable that can be passed as a parameter and is bound
// directly instead of having values copied into it.
func (c *Cursor) Var(token interface{}, opts ...VarOption) (*variable.Variable, error) {
	o := &varOptions{arraySize: c.bindArraySize, input: true}
	for _, opt := range opts {
		opt(o)
	}
	desc, err := c.registry.ResolveByTypeToken(token)
	if err != nil {
		return nil, err
	}
	v, err := variable.New(desc, o.arraySize, o.size, o.scale)
	if err != nil {
		return nil, err
	}
	if o.inConverter != nil {
		v.InConverter = o.inConverter
	}
	if o.outConverter != nil {
		v.OutConverter = o.outConverter
	}
	v.SetDirection(o.input, o.output)
	return v, nil
}
