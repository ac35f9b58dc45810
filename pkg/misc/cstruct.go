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
	"encoding/binary"
	"time"

	"github.com/google/uuid"
)

// The structs below mirror the native date, time, timestamp and GUID layouts
// of the call-level interface. Fields are little endian and packed; callers
// pass slices of at least the layout size.

type DateStruct struct {
	Year  int16
	Month uint16
	Day   uint16
}

func (d DateStruct) Put(b []byte) {
	binary.LittleEndian.PutUint16(b[0:], uint16(d.Year))
	binary.LittleEndian.PutUint16(b[2:], d.Month)
	binary.LittleEndian.PutUint16(b[4:], d.Day)
}

func ReadDateStruct(b []byte) DateStruct {
	return DateStruct{
		Year:  int16(binary.LittleEndian.Uint16(b[0:])),
		Month: binary.LittleEndian.Uint16(b[2:]),
		Day:   binary.LittleEndian.Uint16(b[4:]),
	}
}

type TimeStruct struct {
	Hour   uint16
	Minute uint16
	Second uint16
}

func (t TimeStruct) Put(b []byte) {
	binary.LittleEndian.PutUint16(b[0:], t.Hour)
	binary.LittleEndian.PutUint16(b[2:], t.Minute)
	binary.LittleEndian.PutUint16(b[4:], t.Second)
}

func ReadTimeStruct(b []byte) TimeStruct {
	return TimeStruct{
		Hour:   binary.LittleEndian.Uint16(b[0:]),
		Minute: binary.LittleEndian.Uint16(b[2:]),
		Second: binary.LittleEndian.Uint16(b[4:]),
	}
}

type TimestampStruct struct {
	Year   int16
	Month  uint16
	Day    uint16
	Hour   uint16
	Minute uint16
	Second uint16
	// Fraction is in nanoseconds.
	Fraction uint32
}

func NewTimestampStruct(t time.Time) TimestampStruct {
	return TimestampStruct{
		Year:     int16(t.Year()),
		Month:    uint16(t.Month()),
		Day:      uint16(t.Day()),
		Hour:     uint16(t.Hour()),
		Minute:   uint16(t.Minute()),
		Second:   uint16(t.Second()),
		Fraction: uint32(t.Nanosecond()),
	}
}

// Time converts the struct into a time in loc.
func (ts TimestampStruct) Time(loc *time.Location) time.Time {
	return time.Date(int(ts.Year), time.Month(ts.Month), int(ts.Day),
		int(ts.Hour), int(ts.Minute), int(ts.Second), int(ts.Fraction), loc)
}

func (ts TimestampStruct) Put(b []byte) {
	binary.LittleEndian.PutUint16(b[0:], uint16(ts.Year))
	binary.LittleEndian.PutUint16(b[2:], ts.Month)
	binary.LittleEndian.PutUint16(b[4:], ts.Day)
	binary.LittleEndian.PutUint16(b[6:], ts.Hour)
	binary.LittleEndian.PutUint16(b[8:], ts.Minute)
	binary.LittleEndian.PutUint16(b[10:], ts.Second)
	binary.LittleEndian.PutUint32(b[12:], ts.Fraction)
}

func ReadTimestampStruct(b []byte) TimestampStruct {
	return TimestampStruct{
		Year:     int16(binary.LittleEndian.Uint16(b[0:])),
		Month:    binary.LittleEndian.Uint16(b[2:]),
		Day:      binary.LittleEndian.Uint16(b[4:]),
		Hour:     binary.LittleEndian.Uint16(b[6:]),
		Minute:   binary.LittleEndian.Uint16(b[8:]),
		Second:   binary.LittleEndian.Uint16(b[10:]),
		Fraction: binary.LittleEndian.Uint32(b[12:]),
	}
}

// PutGUID writes u in the native GUID layout: Data1, Data2 and Data3 are
// little endian integers, Data4 is copied as is.
func PutGUID(b []byte, u uuid.UUID) {
	binary.LittleEndian.PutUint32(b[0:], binary.BigEndian.Uint32(u[0:4]))
	binary.LittleEndian.PutUint16(b[4:], binary.BigEndian.Uint16(u[4:6]))
	binary.LittleEndian.PutUint16(b[6:], binary.BigEndian.Uint16(u[6:8]))
	copy(b[8:16], u[8:16])
}

func ReadGUID(b []byte) uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], binary.LittleEndian.Uint32(b[0:]))
	binary.BigEndian.PutUint16(u[4:6], binary.LittleEndian.Uint16(b[4:]))
	binary.BigEndian.PutUint16(u[6:8], binary.LittleEndian.Uint16(b[6:]))
	copy(u[8:16], b[8:16])
	return u
}
