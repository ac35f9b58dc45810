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
	"database/sql/driver"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/protocol"
)

// mysqlStates maps server error numbers to SQLSTATE for errors that arrive
// without one.
var mysqlStates = map[uint16]string{
	1045: constant.SQLStateAuthorization,
	1048: constant.SQLStateIntegrity,
	1062: constant.SQLStateIntegrity,
	1064: constant.SQLStateSyntaxError,
	1146: constant.SQLStateTableNotFound,
	1205: constant.SQLStateTimeout,
	1213: constant.SQLStateSerialization,
	1264: "22003",
	1292: "22007",
	1366: constant.SQLStateInvalidCast,
	1406: constant.SQLStateRightTruncated,
	1451: constant.SQLStateIntegrity,
	1452: constant.SQLStateIntegrity,
	1054: "42S22",
	1049: "3D000",
}

// diagnosers translate backend specific errors; the first match wins.
var diagnosers = []func(err error) (protocol.DiagRecord, bool){
	diagnoseMySQL,
	diagnosePostgres,
}

func diagnoseMySQL(err error) (protocol.DiagRecord, bool) {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return protocol.DiagRecord{}, false
	}
	state, ok := mysqlStates[myErr.Number]
	switch {
	case myErr.SQLState != [5]byte{}:
		state = string(myErr.SQLState[:])
	case !ok:
		state = constant.SQLStateGeneralError
	}
	return protocol.DiagRecord{SQLState: state, NativeError: int32(myErr.Number), Message: myErr.Message}, true
}

func diagnosePostgres(err error) (protocol.DiagRecord, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return protocol.DiagRecord{}, false
	}
	return protocol.DiagRecord{SQLState: pgErr.Code, Message: pgErr.Message}, true
}

// diagnose turns an error of database/sql or a backend driver into a
// diagnostic record, using fallback when the SQLSTATE cannot be told.
func diagnose(err error, fallback string) protocol.DiagRecord {
	for _, fn := range diagnosers {
		if rec, ok := fn(err); ok {
			return rec
		}
	}
	state := fallback
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		state = constant.SQLStateTimeout
	case errors.Is(err, context.Canceled):
		state = constant.SQLStateCanceled
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone), errors.Is(err, mysql.ErrInvalidConn):
		state = constant.SQLStateLinkFailure
	case errors.Is(err, sql.ErrTxDone):
		state = constant.SQLStateInvalidTxState
	}
	return protocol.DiagRecord{SQLState: state, Message: err.Error()}
}
