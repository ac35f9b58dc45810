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

//go:build cgo

package sqlbridge

import (
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/protocol"
)

func init() {
	diagnosers = append(diagnosers, diagnoseSQLite)
}

var sqliteStates = map[sqlite3.ErrNo]string{
	sqlite3.ErrConstraint: constant.SQLStateIntegrity,
	sqlite3.ErrBusy:       constant.SQLStateTimeout,
	sqlite3.ErrLocked:     constant.SQLStateTimeout,
	sqlite3.ErrTooBig:     constant.SQLStateRightTruncated,
	sqlite3.ErrMismatch:   constant.SQLStateInvalidCast,
	sqlite3.ErrError:      constant.SQLStateSyntaxError,
	sqlite3.ErrAuth:       constant.SQLStateAuthorization,
	sqlite3.ErrCantOpen:   constant.SQLStateConnection,
}

func diagnoseSQLite(err error) (protocol.DiagRecord, bool) {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return protocol.DiagRecord{}, false
	}
	state, ok := sqliteStates[liteErr.Code]
	if !ok {
		state = constant.SQLStateGeneralError
	}
	return protocol.DiagRecord{SQLState: state, NativeError: int32(liteErr.ExtendedCode), Message: liteErr.Error()}, true
}
