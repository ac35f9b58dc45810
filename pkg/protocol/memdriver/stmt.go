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
	"fmt"
	"sort"

	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/protocol"
)

type Stmt struct {
	protocol.Diagnostics

	conn       *Conn
	id         int64
	cursorName string
	freed      bool

	prepared string
	script   *Script

	params map[int]*protocol.Binding
	cols   map[int]*protocol.Binding

	rowArraySize int
	paramsetSize int
	rowsFetched  *int

	executed bool
	results  []Result
	current  int
	open     bool
	next     int
	rowCount int64
}

func newStmt(c *Conn) *Stmt {
	id := c.driver.ids.Inc()
	return &Stmt{
		conn:         c,
		id:           id,
		cursorName:   fmt.Sprintf("SQL_CUR%d", id),
		params:       make(map[int]*protocol.Binding),
		cols:         make(map[int]*protocol.Binding),
		rowArraySize: 1,
		paramsetSize: 1,
		rowCount:     -1,
	}
}

func (s *Stmt) begin(ctx context.Context) constant.Return {
	s.Reset()
	if s.freed {
		return constant.ReturnInvalidHandle
	}
	if !s.conn.connected {
		return s.Raise(constant.ReturnError, constant.SQLStateNotConnected, "connection not open")
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return s.Raise(constant.ReturnError, constant.SQLStateTimeout, "%v", err)
		}
	}
	return constant.ReturnSuccess
}

func (s *Stmt) Prepare(ctx context.Context, sql string) constant.Return {
	if rc := s.begin(ctx); rc != constant.ReturnSuccess {
		return rc
	}
	script, ok := s.conn.driver.lookup(sql)
	if !ok {
		return s.Raise(constant.ReturnError, constant.SQLStateSyntaxError, "syntax error or access violation: %s", normalize(sql))
	}
	s.open = false
	s.executed = false
	s.prepared = sql
	s.script = script
	return constant.ReturnSuccess
}

func (s *Stmt) Execute(ctx context.Context) constant.Return {
	if rc := s.begin(ctx); rc != constant.ReturnSuccess {
		return rc
	}
	if s.script == nil {
		return s.Raise(constant.ReturnError, constant.SQLStateSequenceError, "function sequence error")
	}
	return s.run(s.prepared, s.script)
}

func (s *Stmt) ExecDirect(ctx context.Context, sql string) constant.Return {
	if rc := s.begin(ctx); rc != constant.ReturnSuccess {
		return rc
	}
	script, ok := s.conn.driver.lookup(sql)
	if !ok {
		return s.Raise(constant.ReturnError, constant.SQLStateSyntaxError, "syntax error or access violation: %s", normalize(sql))
	}
	s.prepared = ""
	s.script = nil
	return s.run(sql, script)
}

func (s *Stmt) run(sql string, script *Script) constant.Return {
	if s.open {
		return s.Raise(constant.ReturnError, constant.SQLStateInvalidCursor, "invalid cursor state")
	}

	positions := make([]int, 0, len(s.params))
	for pos := range s.params {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	execution := Execution{SQL: normalize(sql)}
	for row := 0; row < s.paramsetSize; row++ {
		values := make([]interface{}, 0, len(positions))
		for _, pos := range positions {
			b := s.params[pos]
			if !b.IsInput() {
				values = append(values, nil)
				continue
			}
			value, err := b.ReadValue(row)
			if err != nil {
				return s.Raise(constant.ReturnError, constant.SQLStateGeneralError, "parameter %d row %d: %v", pos, row, err)
			}
			values = append(values, value)
		}
		execution.Params = append(execution.Params, values)
	}
	s.conn.driver.record(execution)

	if len(script.Failure) > 0 {
		s.Append(script.Failure...)
		return constant.ReturnError
	}
	for pos, value := range script.Outputs {
		b, ok := s.params[pos]
		if !ok || !b.IsOutput() {
			continue
		}
		if _, err := b.WriteValue(0, value); err != nil {
			return s.Raise(constant.ReturnError, constant.SQLStateGeneralError, "output parameter %d: %v", pos, err)
		}
	}

	s.executed = true
	s.results = script.Results
	if len(s.results) == 0 {
		s.results = []Result{{}}
	}
	s.current = 0
	return s.activate()
}

func (s *Stmt) activate() constant.Return {
	r := s.results[s.current]
	s.next = 0
	if len(r.Columns) > 0 {
		s.open = true
		s.rowCount = -1
		return constant.ReturnSuccess
	}
	s.open = false
	s.rowCount = r.RowsAffected
	if r.RowsAffected == 0 {
		return constant.ReturnNoData
	}
	return constant.ReturnSuccess
}

func (s *Stmt) Fetch(ctx context.Context) constant.Return {
	if rc := s.begin(ctx); rc != constant.ReturnSuccess {
		return rc
	}
	if !s.open {
		return s.Raise(constant.ReturnError, constant.SQLStateInvalidCursor, "invalid cursor state")
	}
	s.conn.driver.fetches.Inc()

	rows := s.results[s.current].Rows
	n := len(rows) - s.next
	if n > s.rowArraySize {
		n = s.rowArraySize
	}
	if n <= 0 {
		s.setFetched(0)
		return constant.ReturnNoData
	}

	rc := constant.ReturnSuccess
	for i := 0; i < n; i++ {
		row := rows[s.next+i]
		for pos, b := range s.cols {
			if pos > len(row) {
				continue
			}
			truncated, err := b.WriteValue(i, row[pos-1])
			if err != nil {
				return s.Raise(constant.ReturnError, constant.SQLStateInvalidCast, "column %d: %v", pos, err)
			}
			if truncated {
				rc = s.Raise(constant.ReturnSuccessWithInfo, constant.SQLStateStringTruncated, "string data, right truncated")
			}
		}
	}
	s.next += n
	s.setFetched(n)
	return rc
}

func (s *Stmt) setFetched(n int) {
	if s.rowsFetched != nil {
		*s.rowsFetched = n
	}
}

func (s *Stmt) MoreResults(ctx context.Context) constant.Return {
	if rc := s.begin(ctx); rc != constant.ReturnSuccess {
		return rc
	}
	if !s.executed || s.current+1 >= len(s.results) {
		s.open = false
		return constant.ReturnNoData
	}
	s.current++
	// an empty count result is still a result
	if rc := s.activate(); rc != constant.ReturnNoData {
		return rc
	}
	return constant.ReturnSuccess
}

func (s *Stmt) CloseCursor() constant.Return {
	s.Reset()
	s.open = false
	return constant.ReturnSuccess
}

func (s *Stmt) Free() constant.Return {
	if s.freed {
		return constant.ReturnInvalidHandle
	}
	s.freed = true
	s.conn.driver.openStmts.Dec()
	return constant.ReturnSuccess
}

func (s *Stmt) BindParameter(position int, b *protocol.Binding) constant.Return {
	s.Reset()
	if position < 1 || b == nil {
		return s.Raise(constant.ReturnError, constant.SQLStateInvalidIndex, "invalid descriptor index %d", position)
	}
	s.params[position] = b
	return constant.ReturnSuccess
}

func (s *Stmt) BindCol(position int, b *protocol.Binding) constant.Return {
	s.Reset()
	if position < 1 || b == nil {
		return s.Raise(constant.ReturnError, constant.SQLStateInvalidIndex, "invalid descriptor index %d", position)
	}
	s.cols[position] = b
	return constant.ReturnSuccess
}

func (s *Stmt) ResetParams() constant.Return {
	s.Reset()
	s.params = make(map[int]*protocol.Binding)
	return constant.ReturnSuccess
}

func (s *Stmt) columns() []Column {
	if !s.executed {
		return nil
	}
	return s.results[s.current].Columns
}

func (s *Stmt) NumResultCols() (int, constant.Return) {
	s.Reset()
	return len(s.columns()), constant.ReturnSuccess
}

func (s *Stmt) DescribeCol(position int) (protocol.ColumnDesc, constant.Return) {
	s.Reset()
	columns := s.columns()
	if position < 1 || position > len(columns) {
		return protocol.ColumnDesc{}, s.Raise(constant.ReturnError, constant.SQLStateInvalidIndex, "invalid descriptor index %d", position)
	}
	c := columns[position-1]
	return protocol.ColumnDesc{Name: c.Name, SQLType: c.SQLType, Size: c.Size, Scale: c.Scale, Nullable: c.Nullable}, constant.ReturnSuccess
}

func (s *Stmt) RowCount() (int64, constant.Return) {
	s.Reset()
	return s.rowCount, constant.ReturnSuccess
}

func (s *Stmt) SetAttr(attr constant.StmtAttr, value interface{}) constant.Return {
	s.Reset()
	switch attr {
	case constant.AttrRowArraySize, constant.AttrParamsetSize:
		n, ok := value.(int)
		if !ok || n < 1 {
			return s.Raise(constant.ReturnError, constant.SQLStateInvalidValue, "invalid attribute value %v", value)
		}
		if attr == constant.AttrRowArraySize {
			s.rowArraySize = n
		} else {
			s.paramsetSize = n
		}
	case constant.AttrRowsFetchedPtr:
		p, ok := value.(*int)
		if !ok {
			return s.Raise(constant.ReturnError, constant.SQLStateInvalidValue, "invalid attribute value %v", value)
		}
		s.rowsFetched = p
	default:
		return s.Raise(constant.ReturnError, constant.SQLStateInvalidAttr, "invalid attribute %d", attr)
	}
	return constant.ReturnSuccess
}

func (s *Stmt) GetAttr(attr constant.StmtAttr) (interface{}, constant.Return) {
	s.Reset()
	switch attr {
	case constant.AttrRowArraySize:
		return s.rowArraySize, constant.ReturnSuccess
	case constant.AttrParamsetSize:
		return s.paramsetSize, constant.ReturnSuccess
	case constant.AttrRowsFetchedPtr:
		return s.rowsFetched, constant.ReturnSuccess
	}
	return nil, s.Raise(constant.ReturnError, constant.SQLStateInvalidAttr, "invalid attribute %d", attr)
}

func (s *Stmt) CursorName() (string, constant.Return) {
	s.Reset()
	return s.cursorName, constant.ReturnSuccess
}

func (s *Stmt) SetCursorName(name string) constant.Return {
	s.Reset()
	if name == "" {
		return s.Raise(constant.ReturnError, constant.SQLStateInvalidName, "invalid cursor name")
	}
	s.cursorName = name
	return constant.ReturnSuccess
}
