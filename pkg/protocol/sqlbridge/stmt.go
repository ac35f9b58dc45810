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
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/protocol"
)

type Stmt struct {
	protocol.Diagnostics

	conn       *Conn
	cursorName string
	freed      bool
	prepared   string

	params map[int]*protocol.Binding
	cols   map[int]*protocol.Binding

	rowArraySize int
	paramsetSize int
	rowsFetched  *int

	rows     *sqlx.Rows
	columns  []*sql.ColumnType
	rowCount int64
}

func newStmt(c *Conn) *Stmt {
	return &Stmt{
		conn:         c,
		cursorName:   fmt.Sprintf("SQL_CUR%d", c.driver.ids.Inc()),
		params:       make(map[int]*protocol.Binding),
		cols:         make(map[int]*protocol.Binding),
		rowArraySize: 1,
		paramsetSize: 1,
		rowCount:     -1,
	}
}

var queryKeywords = map[string]bool{
	"SELECT":   true,
	"WITH":     true,
	"SHOW":     true,
	"VALUES":   true,
	"EXPLAIN":  true,
	"PRAGMA":   true,
	"DESCRIBE": true,
	"DESC":     true,
	"TABLE":    true,
	"CALL":     true,
}

// isQuery reports whether query is expected to produce rows.
func isQuery(query string) bool {
	text := strings.TrimLeft(query, " \t\r\n(")
	end := strings.IndexAny(text, " \t\r\n(;")
	if end < 0 {
		end = len(text)
	}
	if queryKeywords[strings.ToUpper(text[:end])] {
		return true
	}
	return strings.Contains(strings.ToUpper(query), " RETURNING ")
}

// translate rewrites the call escape {CALL name(...)} into plain SQL.
func translate(query string) (string, error) {
	text := strings.TrimSpace(query)
	if !strings.HasPrefix(text, "{") || !strings.HasSuffix(text, "}") {
		return query, nil
	}
	inner := strings.TrimSpace(text[1 : len(text)-1])
	if !strings.HasPrefix(strings.ToUpper(inner), "CALL ") {
		return "", fmt.Errorf("escape sequence %s not supported", text)
	}
	return inner, nil
}

func (s *Stmt) begin(ctx context.Context) constant.Return {
	s.Reset()
	if s.freed {
		return constant.ReturnInvalidHandle
	}
	if s.conn.db == nil {
		return s.Raise(constant.ReturnError, constant.SQLStateNotConnected, "connection not open")
	}
	if err := ctx.Err(); err != nil {
		return s.fail(err, constant.SQLStateTimeout)
	}
	return constant.ReturnSuccess
}

func (s *Stmt) Prepare(ctx context.Context, query string) constant.Return {
	if rc := s.begin(ctx); rc != constant.ReturnSuccess {
		return rc
	}
	s.closeRows()
	s.prepared = ""
	translated, err := translate(query)
	if err != nil {
		return s.Raise(constant.ReturnError, constant.SQLStateNotImplemented, "%v", err)
	}
	if _, err := s.conn.statement(ctx, translated); err != nil {
		return s.fail(err, constant.SQLStateSyntaxError)
	}
	s.prepared = translated
	return constant.ReturnSuccess
}

func (s *Stmt) Execute(ctx context.Context) constant.Return {
	if rc := s.begin(ctx); rc != constant.ReturnSuccess {
		return rc
	}
	if s.prepared == "" {
		return s.Raise(constant.ReturnError, constant.SQLStateSequenceError, "function sequence error")
	}
	return s.run(ctx, s.prepared)
}

func (s *Stmt) ExecDirect(ctx context.Context, query string) constant.Return {
	if rc := s.begin(ctx); rc != constant.ReturnSuccess {
		return rc
	}
	s.prepared = ""
	translated, err := translate(query)
	if err != nil {
		return s.Raise(constant.ReturnError, constant.SQLStateNotImplemented, "%v", err)
	}
	return s.run(ctx, translated)
}

// arguments reads the bound parameters, one argument list per parameter set.
func (s *Stmt) arguments() ([][]interface{}, constant.Return) {
	positions := make([]int, 0, len(s.params))
	for pos := range s.params {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	for i, pos := range positions {
		if pos != i+1 {
			return nil, s.Raise(constant.ReturnError, constant.SQLStateInvalidIndex, "parameter %d not bound", i+1)
		}
		if s.params[pos].IsOutput() {
			return nil, s.Raise(constant.ReturnError, constant.SQLStateNotImplemented, "output parameters not supported")
		}
	}
	sets := make([][]interface{}, s.paramsetSize)
	for row := range sets {
		args := make([]interface{}, len(positions))
		for i, pos := range positions {
			value, err := s.params[pos].ReadValue(row)
			if err != nil {
				return nil, s.Raise(constant.ReturnError, constant.SQLStateGeneralError, "parameter %d row %d: %v", pos, row, err)
			}
			args[i] = value
		}
		sets[row] = args
	}
	return sets, constant.ReturnSuccess
}

func (s *Stmt) run(ctx context.Context, query string) constant.Return {
	if s.rows != nil {
		return s.Raise(constant.ReturnError, constant.SQLStateInvalidCursor, "invalid cursor state")
	}
	sets, rc := s.arguments()
	if rc != constant.ReturnSuccess {
		return rc
	}
	stmt, err := s.conn.statement(ctx, query)
	if err != nil {
		return s.fail(err, constant.SQLStateSyntaxError)
	}

	if isQuery(query) {
		if len(sets) > 1 {
			return s.Raise(constant.ReturnError, constant.SQLStateNotImplemented, "arrays of parameters not supported for queries")
		}
		rows, err := stmt.QueryxContext(ctx, sets[0]...)
		if err != nil {
			return s.fail(err, constant.SQLStateGeneralError)
		}
		return s.open(rows)
	}

	var total int64
	for _, args := range sets {
		res, err := stmt.ExecContext(ctx, args...)
		if err != nil {
			return s.fail(err, constant.SQLStateGeneralError)
		}
		if n, err := res.RowsAffected(); err == nil {
			total += n
		}
	}
	s.rowCount = total
	if total == 0 {
		return constant.ReturnNoData
	}
	return constant.ReturnSuccess
}

func (s *Stmt) open(rows *sqlx.Rows) constant.Return {
	columns, err := rows.ColumnTypes()
	if err != nil {
		rows.Close()
		return s.fail(err, constant.SQLStateGeneralError)
	}
	s.rows = rows
	s.columns = columns
	s.rowCount = -1
	return constant.ReturnSuccess
}

func (s *Stmt) closeRows() {
	if s.rows != nil {
		s.rows.Close()
		s.rows = nil
	}
	s.columns = nil
}

func (s *Stmt) Fetch(ctx context.Context) constant.Return {
	if rc := s.begin(ctx); rc != constant.ReturnSuccess {
		return rc
	}
	if s.rows == nil {
		return s.Raise(constant.ReturnError, constant.SQLStateInvalidCursor, "invalid cursor state")
	}

	rc := constant.ReturnSuccess
	n := 0
	for n < s.rowArraySize && s.rows.Next() {
		values, err := s.rows.SliceScan()
		if err != nil {
			return s.fail(err, constant.SQLStateGeneralError)
		}
		for pos, b := range s.cols {
			if pos > len(values) {
				continue
			}
			truncated, err := b.WriteValue(n, values[pos-1])
			if err != nil {
				return s.Raise(constant.ReturnError, constant.SQLStateInvalidCast, "column %d: %v", pos, err)
			}
			if truncated {
				rc = s.Raise(constant.ReturnSuccessWithInfo, constant.SQLStateStringTruncated, "string data, right truncated")
			}
		}
		n++
	}
	if err := s.rows.Err(); err != nil {
		return s.fail(err, constant.SQLStateGeneralError)
	}
	if s.rowsFetched != nil {
		*s.rowsFetched = n
	}
	if n == 0 {
		return constant.ReturnNoData
	}
	return rc
}

func (s *Stmt) MoreResults(ctx context.Context) constant.Return {
	if rc := s.begin(ctx); rc != constant.ReturnSuccess {
		return rc
	}
	if s.rows == nil {
		return constant.ReturnNoData
	}
	if !s.rows.NextResultSet() {
		err := s.rows.Err()
		s.closeRows()
		if err != nil {
			return s.fail(err, constant.SQLStateGeneralError)
		}
		return constant.ReturnNoData
	}
	columns, err := s.rows.ColumnTypes()
	if err != nil {
		return s.fail(err, constant.SQLStateGeneralError)
	}
	s.columns = columns
	return constant.ReturnSuccess
}

func (s *Stmt) CloseCursor() constant.Return {
	s.Reset()
	s.closeRows()
	return constant.ReturnSuccess
}

func (s *Stmt) Free() constant.Return {
	if s.freed {
		return constant.ReturnInvalidHandle
	}
	s.closeRows()
	s.freed = true
	s.conn.releaseStmt(s)
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

func (s *Stmt) NumResultCols() (int, constant.Return) {
	s.Reset()
	return len(s.columns), constant.ReturnSuccess
}

func (s *Stmt) DescribeCol(position int) (protocol.ColumnDesc, constant.Return) {
	s.Reset()
	if position < 1 || position > len(s.columns) {
		return protocol.ColumnDesc{}, s.Raise(constant.ReturnError, constant.SQLStateInvalidIndex, "invalid descriptor index %d", position)
	}
	return describeColumn(s.conn.driver.backend, s.columns[position-1]), constant.ReturnSuccess
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

func (s *Stmt) fail(err error, fallback string) constant.Return {
	s.Append(diagnose(err, fallback))
	return constant.ReturnError
}
