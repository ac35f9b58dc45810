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

package constant

import "fmt"

// Return is the status code of a protocol call.
type Return int16

const (
	ReturnSuccess         Return = 0
	ReturnSuccessWithInfo Return = 1
	ReturnStillExecuting  Return = 2
	ReturnNeedData        Return = 99
	ReturnNoData          Return = 100
	ReturnError           Return = -1
	ReturnInvalidHandle   Return = -2
)

// Succeeded reports whether the call completed, with or without warnings.
func (r Return) Succeeded() bool {
	return r == ReturnSuccess || r == ReturnSuccessWithInfo
}

func (r Return) String() string {
	switch r {
	case ReturnSuccess:
		return "SUCCESS"
	case ReturnSuccessWithInfo:
		return "SUCCESS_WITH_INFO"
	case ReturnStillExecuting:
		return "STILL_EXECUTING"
	case ReturnNeedData:
		return "NEED_DATA"
	case ReturnNoData:
		return "NO_DATA"
	case ReturnError:
		return "ERROR"
	case ReturnInvalidHandle:
		return "INVALID_HANDLE"
	default:
		return fmt.Sprintf("%d", r)
	}
}

// NullData is the indicator value of a NULL slot.
const NullData int64 = -1

// ParamDirection tells the driver which way data flows through a bound parameter.
type ParamDirection int16

const (
	ParamInput       ParamDirection = 1
	ParamInputOutput ParamDirection = 2
	ParamOutput      ParamDirection = 4
)

// Nullable is the nullability a driver reports for a result column.
type Nullable int16

const (
	NullableNoNulls Nullable = 0
	NullableNulls   Nullable = 1
	NullableUnknown Nullable = 2
)

// StmtAttr identifies a statement attribute.
type StmtAttr int32

const (
	AttrParamsetSize   StmtAttr = 22
	AttrRowsFetchedPtr StmtAttr = 26
	AttrRowArraySize   StmtAttr = 27
)

// Completion selects how a transaction ends.
type Completion int16

const (
	Commit   Completion = 0
	Rollback Completion = 1
)

// SQLSTATE values produced by the bundled drivers.
const (
	SQLStateStringTruncated = "01004"
	SQLStateGeneralError    = "HY000"
	SQLStateSyntaxError     = "42000"
	SQLStateInvalidCursor   = "24000"
	SQLStateConnection      = "08001"
	SQLStateNotConnected    = "08003"
	SQLStateInvalidAttr     = "HY092"
	SQLStateInvalidIndex    = "07009"
	SQLStateSequenceError   = "HY010"
	SQLStateInvalidTranOp   = "HY012"
	SQLStateTimeout         = "HYT00"
	SQLStateConnectionInUse = "08002"
	SQLStateInvalidCast     = "22018"
	SQLStateInvalidValue    = "HY024"
	SQLStateInvalidName     = "34000"
	SQLStateNotImplemented  = "HYC00"
	SQLStateNoDriver        = "IM002"
	SQLStateLinkFailure     = "08S01"
	SQLStateIntegrity       = "23000"
	SQLStateRightTruncated  = "22001"
	SQLStateTableNotFound   = "42S02"
	SQLStateAuthorization   = "28000"
	SQLStateInvalidTxState  = "25000"
	SQLStateSerialization   = "40001"
	SQLStateCanceled        = "HY008"
)

// Engine defaults.
const (
	DefaultArraySize      = 1
	DefaultBindArraySize  = 1
	DefaultLongBufferSize = 128 * 1024
	MaxBufferSize         = 1<<31 - 1
)
