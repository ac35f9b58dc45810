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
	"time"

	"github.com/cectc/dbbind/pkg/types"
)

// API type objects for comparison with Column.Type.
var (
	STRING   = types.STRING
	BINARY   = types.BINARY
	NUMBER   = types.NUMBER
	DATETIME = types.DATETIME
	ROWID    = types.ROWID
)

func Date(year int, month time.Month, day int) types.Date {
	return types.Date{Year: year, Month: month, Day: day}
}

func Time(hour, minute, second int) types.TimeOfDay {
	return types.TimeOfDay{Hour: hour, Minute: minute, Second: second}
}

// Timestamp returns the given instant in UTC.
func Timestamp(year int, month time.Month, day, hour, minute, second int) time.Time {
	return time.Date(year, month, day, hour, minute, second, 0, time.UTC)
}

func Binary(s string) []byte {
	return []byte(s)
}

// DateFromTicks, TimeFromTicks and TimestampFromTicks interpret ticks as
// seconds since the epoch in local time.

func DateFromTicks(ticks int64) types.Date {
	return types.DateOf(time.Unix(ticks, 0).Local())
}

func TimeFromTicks(ticks int64) types.TimeOfDay {
	return types.TimeOfDayOf(time.Unix(ticks, 0).Local())
}

func TimestampFromTicks(ticks int64) time.Time {
	return time.Unix(ticks, 0).Local()
}
