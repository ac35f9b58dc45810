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

package protocol

import (
	"strings"

	"github.com/cectc/dbbind/pkg/constant"
	err2 "github.com/cectc/dbbind/pkg/errors"
	"github.com/cectc/dbbind/pkg/log"
)

// Check converts the status of a protocol call made on h into an error.
// Success and success with info are both nil; the diagnostics attached to a
// warning are only logged.
func Check(h Handle, rc constant.Return, context string) error {
	switch rc {
	case constant.ReturnSuccess:
		return nil
	case constant.ReturnSuccessWithInfo:
		if log.Enabled(log.DebugLevel) {
			records, msg := collect(h)
			if len(records) > 0 {
				log.Debugf("%s: swallowed warning [%s] %s", context, records[0].SQLState, msg)
			}
		}
		return nil
	case constant.ReturnInvalidHandle:
		return err2.NewInternalError("invalid handle").WithContext(context)
	}

	records, msg := collect(h)
	e := err2.Diagnostics(err2.KindDatabase, msg, context)
	if len(records) > 0 {
		e.Kind = KindOfSQLState(records[0].SQLState)
		e.SQLState = records[0].SQLState
		e.NativeCode = records[0].NativeError
	}
	return e
}

func collect(h Handle) ([]DiagRecord, string) {
	n, rc := h.NumDiagRecords()
	if !rc.Succeeded() {
		return nil, "cannot get number of diagnostic records"
	}
	if n == 0 {
		return nil, "no diagnostic message text available"
	}
	records := make([]DiagRecord, 0, n)
	messages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		rec, rc := h.DiagRecord(i)
		if !rc.Succeeded() {
			return records, "cannot get diagnostic message text"
		}
		records = append(records, rec)
		messages = append(messages, rec.Message)
	}
	return records, strings.Join(messages, "\n")
}

// KindOfSQLState picks the error kind for a failure from its SQLSTATE class.
func KindOfSQLState(state string) err2.Kind {
	switch {
	case state == "HYC00", strings.HasPrefix(state, "IM"):
		return err2.KindNotSupported
	case strings.HasPrefix(state, "HYT"):
		return err2.KindOperational
	case len(state) < 2:
		return err2.KindDatabase
	}
	switch state[:2] {
	case "22":
		return err2.KindData
	case "23":
		return err2.KindIntegrity
	case "08", "40":
		return err2.KindOperational
	case "07", "24", "34", "3D", "42":
		return err2.KindProgramming
	}
	return err2.KindDatabase
}
