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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/protocol"
)

func connect(t *testing.T, d *Driver) (*Conn, *Stmt) {
	c, rc := d.AllocConn()
	require.Equal(t, constant.ReturnSuccess, rc)
	require.Equal(t, constant.ReturnSuccess, c.Connect(context.Background(), "memory://test"))
	s, rc := c.AllocStmt()
	require.Equal(t, constant.ReturnSuccess, rc)
	return c.(*Conn), s.(*Stmt)
}

func binding(ctype constant.CType, stride, rows int) *protocol.Binding {
	indicators := make([]int64, rows)
	for i := range indicators {
		indicators[i] = constant.NullData
	}
	return &protocol.Binding{
		CType:      ctype,
		Direction:  constant.ParamInput,
		Buffer:     make([]byte, stride*rows),
		Stride:     stride,
		Indicators: indicators,
	}
}

func TestQueryFetch(t *testing.T) {
	d := New()
	d.Query("SELECT a, b FROM t",
		[]Column{
			{Name: "a", SQLType: constant.SQLType_INTEGER, Size: 10},
			{Name: "b", SQLType: constant.SQLType_VARCHAR, Size: 4, Nullable: constant.NullableNulls},
		},
		[]interface{}{int64(1), "x"},
		[]interface{}{int64(2), nil},
		[]interface{}{int64(3), "toolong"},
	)
	_, s := connect(t, d)
	ctx := context.Background()

	require.Equal(t, constant.ReturnSuccess, s.Prepare(ctx, "SELECT  a, b\nFROM t"))
	require.Equal(t, constant.ReturnSuccess, s.Execute(ctx))
	n, _ := s.NumResultCols()
	assert.Equal(t, 2, n)
	desc, rc := s.DescribeCol(2)
	require.Equal(t, constant.ReturnSuccess, rc)
	assert.Equal(t, "b", desc.Name)
	assert.Equal(t, constant.NullableNulls, desc.Nullable)
	_, rc = s.DescribeCol(3)
	assert.Equal(t, constant.ReturnError, rc)

	var fetched int
	require.Equal(t, constant.ReturnSuccess, s.SetAttr(constant.AttrRowArraySize, 2))
	require.Equal(t, constant.ReturnSuccess, s.SetAttr(constant.AttrRowsFetchedPtr, &fetched))
	a := binding(constant.CTypeLong, constant.SizeofLong, 2)
	b := binding(constant.CTypeChar, 5, 2)
	require.Equal(t, constant.ReturnSuccess, s.BindCol(1, a))
	require.Equal(t, constant.ReturnSuccess, s.BindCol(2, b))

	assert.Equal(t, constant.ReturnSuccess, s.Fetch(ctx))
	assert.Equal(t, 2, fetched)
	value, _ := b.ReadValue(0)
	assert.Equal(t, "x", value)
	assert.Equal(t, constant.NullData, b.Indicators[1])

	assert.Equal(t, constant.ReturnSuccessWithInfo, s.Fetch(ctx))
	assert.Equal(t, 1, fetched)
	assert.Equal(t, int64(7), b.Indicators[0])
	records, _ := s.NumDiagRecords()
	assert.Equal(t, 1, records)
	record, _ := s.DiagRecord(1)
	assert.Equal(t, constant.SQLStateStringTruncated, record.SQLState)

	assert.Equal(t, constant.ReturnNoData, s.Fetch(ctx))
	assert.Equal(t, 0, fetched)
	assert.Equal(t, int64(3), d.FetchCalls())
}

func TestExecuteBatch(t *testing.T) {
	d := New()
	d.Exec("INSERT INTO t VALUES (?, ?)", 3)
	_, s := connect(t, d)
	ctx := context.Background()

	a := binding(constant.CTypeLong, constant.SizeofLong, 3)
	b := binding(constant.CTypeChar, 8, 3)
	for i, v := range []interface{}{1, 2, 3} {
		_, err := a.WriteValue(i, v)
		require.NoError(t, err)
	}
	_, err := b.WriteValue(0, "one")
	require.NoError(t, err)
	_, err = b.WriteValue(2, "three")
	require.NoError(t, err)

	require.Equal(t, constant.ReturnSuccess, s.Prepare(ctx, "INSERT INTO t VALUES (?, ?)"))
	require.Equal(t, constant.ReturnSuccess, s.BindParameter(1, a))
	require.Equal(t, constant.ReturnSuccess, s.BindParameter(2, b))
	require.Equal(t, constant.ReturnSuccess, s.SetAttr(constant.AttrParamsetSize, 3))
	require.Equal(t, constant.ReturnSuccess, s.Execute(ctx))

	count, _ := s.RowCount()
	assert.Equal(t, int64(3), count)
	execution, ok := d.LastExecution()
	require.True(t, ok)
	assert.Equal(t, "INSERT INTO t VALUES (?, ?)", execution.SQL)
	assert.Equal(t, [][]interface{}{
		{int64(1), "one"},
		{int64(2), nil},
		{int64(3), "three"},
	}, execution.Params)
}

func TestNoDataAndFailures(t *testing.T) {
	d := New()
	d.Exec("DELETE FROM t", 0)
	d.Fail("INSERT INTO dup", "23000", 1062, "duplicate entry")
	_, s := connect(t, d)
	ctx := context.Background()

	assert.Equal(t, constant.ReturnNoData, s.ExecDirect(ctx, "DELETE FROM t"))
	count, _ := s.RowCount()
	assert.Equal(t, int64(0), count)

	assert.Equal(t, constant.ReturnError, s.ExecDirect(ctx, "INSERT INTO dup"))
	record, _ := s.DiagRecord(1)
	assert.Equal(t, protocol.DiagRecord{SQLState: "23000", NativeError: 1062, Message: "duplicate entry"}, record)

	assert.Equal(t, constant.ReturnError, s.Prepare(ctx, "SELECT nothing"))
	record, _ = s.DiagRecord(1)
	assert.Equal(t, constant.SQLStateSyntaxError, record.SQLState)

	assert.Equal(t, constant.ReturnError, s.Fetch(ctx))
	record, _ = s.DiagRecord(1)
	assert.Equal(t, constant.SQLStateInvalidCursor, record.SQLState)

	fresh, _ := connect(t, d)
	stmt, _ := fresh.AllocStmt()
	assert.Equal(t, constant.ReturnError, stmt.Execute(ctx))
}

func TestMultipleResults(t *testing.T) {
	d := New()
	d.Script("CALL two()", &Script{Results: []Result{
		{Columns: []Column{{Name: "x", SQLType: constant.SQLType_INTEGER}}, Rows: [][]interface{}{{int64(1)}}},
		{RowsAffected: 0},
		{Columns: []Column{{Name: "y", SQLType: constant.SQLType_VARCHAR}}},
	}})
	_, s := connect(t, d)
	ctx := context.Background()

	require.Equal(t, constant.ReturnSuccess, s.ExecDirect(ctx, "CALL two()"))
	n, _ := s.NumResultCols()
	assert.Equal(t, 1, n)
	assert.Equal(t, constant.ReturnSuccess, s.MoreResults(ctx))
	n, _ = s.NumResultCols()
	assert.Equal(t, 0, n)
	assert.Equal(t, constant.ReturnSuccess, s.MoreResults(ctx))
	desc, _ := s.DescribeCol(1)
	assert.Equal(t, "y", desc.Name)
	assert.Equal(t, constant.ReturnNoData, s.MoreResults(ctx))
}

func TestOutputParameters(t *testing.T) {
	d := New()
	d.Script("{? = CALL answer()}", &Script{Outputs: map[int]interface{}{1: int64(42)}, Results: []Result{{RowsAffected: 1}}})
	_, s := connect(t, d)

	out := binding(constant.CTypeSBigInt, constant.SizeofSBigInt, 1)
	out.Direction = constant.ParamOutput
	require.Equal(t, constant.ReturnSuccess, s.BindParameter(1, out))
	require.Equal(t, constant.ReturnSuccess, s.ExecDirect(context.Background(), "{? = CALL answer()}"))
	value, err := out.ReadValue(0)
	require.NoError(t, err)
	assert.Equal(t, int64(42), value)

	execution, _ := d.LastExecution()
	assert.Equal(t, [][]interface{}{{nil}}, execution.Params)
}

func TestConnectionLifecycle(t *testing.T) {
	d := New()
	c, s := connect(t, d)
	ctx := context.Background()

	assert.Equal(t, "memory://test", c.ConnectedDSN())
	assert.Equal(t, constant.ReturnSuccess, c.SetAutoCommit(false))
	assert.False(t, c.AutoCommit())
	assert.Equal(t, constant.ReturnSuccess, c.EndTran(ctx, constant.Commit))
	assert.Equal(t, constant.ReturnSuccess, c.EndTran(ctx, constant.Rollback))
	assert.Equal(t, int64(1), d.Commits())
	assert.Equal(t, int64(1), d.Rollbacks())

	name, _ := s.CursorName()
	assert.Contains(t, name, "SQL_CUR")
	assert.Equal(t, constant.ReturnSuccess, s.SetCursorName("mine"))
	name, _ = s.CursorName()
	assert.Equal(t, "mine", name)

	assert.Equal(t, constant.ReturnSuccess, s.Free())
	assert.Equal(t, constant.ReturnInvalidHandle, s.Free())
	assert.Equal(t, constant.ReturnInvalidHandle, s.Prepare(ctx, "SELECT 1"))
	assert.Equal(t, constant.ReturnSuccess, c.Disconnect(ctx))
	_, rc := c.AllocStmt()
	assert.Equal(t, constant.ReturnError, rc)
	assert.Equal(t, constant.ReturnSuccess, c.Free())
	conns, stmts := d.OpenHandles()
	assert.Equal(t, int64(0), conns)
	assert.Equal(t, int64(0), stmts)

	d.FailConnect(constant.SQLStateConnection, "unable to connect")
	other, _ := d.AllocConn()
	assert.Equal(t, constant.ReturnError, other.Connect(ctx, "memory://x"))
	record, _ := other.DiagRecord(1)
	assert.Equal(t, "unable to connect", record.Message)
}
