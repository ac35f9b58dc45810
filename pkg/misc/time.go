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

package misc

import (
	"time"

	"github.com/pkg/errors"
)

const (
	TimeFormat      = "2006-01-02 15:04:05"
	DateFormat      = "2006-01-02"
	ClockFormat     = "15:04:05"
	TimestampFormat = "2006-01-02 15:04:05.999999999"
)

var temporalLayouts = []string{
	TimestampFormat,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	DateFormat,
	"15:04:05.999999999",
	ClockFormat,
}

// ParseTemporal parses the textual date, time and timestamp forms backends
// return for temporal columns.
func ParseTemporal(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range temporalLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unrecognized date/time text %q", s)
}
