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

//go:generate mockgen -destination=../../testdata/mock_protocol.go -package=testdata . Driver,Conn,Stmt

// Package protocol declares the call-level database interface the engine
// drives. Every call reports a status code; failures are described by the
// diagnostic records of the handle the call was made on.
package protocol

import (
	"context"

	"github.com/cectc/dbbind/pkg/constant"
)

// DiagRecord is one diagnostic record attached to a handle.
type DiagRecord struct {
	SQLState    string
	NativeError int32
	Message     string
}

// Handle exposes the diagnostic records of the most recent call.
type Handle interface {
	NumDiagRecords() (int, constant.Return)
	// DiagRecord returns record i, counting from 1.
	DiagRecord(i int) (DiagRecord, constant.Return)
}

// Driver is the entry point of a protocol implementation.
type Driver interface {
	Handle
	Name() string
	// ThreadSafe reports whether statements of one connection may be used
	// from different goroutines. The engine reports it, it does not enforce it.
	ThreadSafe() bool
	AllocConn() (Conn, constant.Return)
}

// Conn is a session with a data source.
type Conn interface {
	Handle
	Connect(ctx context.Context, dsn string) constant.Return
	// ConnectedDSN is the completed connection string after Connect.
	ConnectedDSN() string
	Disconnect(ctx context.Context) constant.Return
	SetAutoCommit(on bool) constant.Return
	EndTran(ctx context.Context, completion constant.Completion) constant.Return
	AllocStmt() (Stmt, constant.Return)
	Free() constant.Return
}

// ColumnDesc is the metadata of one result column.
type ColumnDesc struct {
	Name     string
	SQLType  constant.SQLType
	Size     int
	Scale    int
	Nullable constant.Nullable
}

// Stmt is a statement handle.
type Stmt interface {
	Handle
	Prepare(ctx context.Context, sql string) constant.Return
	Execute(ctx context.Context) constant.Return
	ExecDirect(ctx context.Context, sql string) constant.Return
	Fetch(ctx context.Context) constant.Return
	MoreResults(ctx context.Context) constant.Return
	CloseCursor() constant.Return
	Free() constant.Return

	// BindParameter and BindCol register a buffer at a 1-based position. The
	// binding stays in effect until it is replaced or the handle is freed.
	BindParameter(position int, b *Binding) constant.Return
	BindCol(position int, b *Binding) constant.Return
	ResetParams() constant.Return

	NumResultCols() (int, constant.Return)
	DescribeCol(position int) (ColumnDesc, constant.Return)
	RowCount() (int64, constant.Return)

	// SetAttr accepts an int for AttrRowArraySize and AttrParamsetSize and an
	// *int for AttrRowsFetchedPtr.
	SetAttr(attr constant.StmtAttr, value interface{}) constant.Return
	GetAttr(attr constant.StmtAttr) (interface{}, constant.Return)

	CursorName() (string, constant.Return)
	SetCursorName(name string) constant.Return
}
