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
	"fmt"

	"github.com/cectc/dbbind/pkg/constant"
)

// Diagnostics holds the records of the most recent call on a handle. Driver
// implementations embed it to satisfy Handle.
type Diagnostics struct {
	records []DiagRecord
}

// Reset drops the records of the previous call.
func (h *Diagnostics) Reset() {
	h.records = h.records[:0]
}

// Raise appends a record and returns rc, so that a failing call can end with
// return h.Raise(...).
func (h *Diagnostics) Raise(rc constant.Return, sqlState string, format string, args ...interface{}) constant.Return {
	h.records = append(h.records, DiagRecord{SQLState: sqlState, Message: fmt.Sprintf(format, args...)})
	return rc
}

func (h *Diagnostics) Append(records ...DiagRecord) {
	h.records = append(h.records, records...)
}

func (h *Diagnostics) NumDiagRecords() (int, constant.Return) {
	return len(h.records), constant.ReturnSuccess
}

func (h *Diagnostics) DiagRecord(i int) (DiagRecord, constant.Return) {
	if i < 1 || i > len(h.records) {
		return DiagRecord{}, constant.ReturnNoData
	}
	return h.records[i-1], constant.ReturnSuccess
}
