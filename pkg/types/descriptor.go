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

package types

import (
	"encoding/binary"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/errors"
	"github.com/cectc/dbbind/pkg/misc"
)

// TypeDescriptor describes how values of one Kind are laid out in a bound
// buffer. Descriptors are built by NewRegistry and never change afterwards.
type TypeDescriptor struct {
	Kind    Kind
	SQLType constant.SQLType
	CType   constant.CType
	// ElementSize is the fixed slot size, zero for variable width kinds.
	ElementSize  int
	DefaultSize  int
	DefaultScale int

	loc *time.Location
}

func (d *TypeDescriptor) String() string {
	return d.Kind.String()
}

// VariableWidth reports whether the slot size derives from a logical size.
func (d *TypeDescriptor) VariableWidth() bool {
	return d.ElementSize == 0
}

// BufferSize returns the slot size needed to hold logicalSize units.
func (d *TypeDescriptor) BufferSize(logicalSize int) int {
	// keeps oversized requests above the ceiling without wrapping
	if logicalSize > constant.MaxBufferSize {
		logicalSize = constant.MaxBufferSize + 1
	}
	switch d.Kind {
	case KindString, KindLongString:
		return logicalSize + 1
	case KindUnicode, KindLongUnicode:
		return (logicalSize + 1) * constant.SizeofWChar
	case KindDecimal:
		// sign, decimal point and terminator
		return logicalSize + 3
	case KindBinary, KindLongBinary:
		return logicalSize
	default:
		return d.ElementSize
	}
}

// Capacity returns the number of data bytes a slot of elementSize holds once
// any terminator is accounted for.
func (d *TypeDescriptor) Capacity(elementSize int) int {
	switch d.Kind {
	case KindString, KindLongString, KindDecimal:
		return elementSize - 1
	case KindUnicode, KindLongUnicode:
		return elementSize - constant.SizeofWChar
	default:
		return elementSize
	}
}

// Terminator returns the number of zero bytes written after variable width
// character data.
func (d *TypeDescriptor) Terminator() int {
	switch d.Kind {
	case KindString, KindLongString, KindDecimal:
		return 1
	case KindUnicode, KindLongUnicode:
		return constant.SizeofWChar
	}
	return 0
}

// Marshal validates the shape of v and returns its encoded bytes together with
// the logical length a variable width slot must offer to hold them.
func (d *TypeDescriptor) Marshal(v interface{}) ([]byte, int, error) {
	switch d.Kind {
	case KindString, KindLongString:
		s, ok := v.(string)
		if !ok {
			return nil, 0, errors.TypeMismatch("string", v)
		}
		return []byte(s), len(s), nil
	case KindUnicode, KindLongUnicode:
		s, ok := v.(string)
		if !ok {
			return nil, 0, errors.TypeMismatch("unicode", v)
		}
		b, err := misc.EncodeWide(s)
		if err != nil {
			return nil, 0, errors.Wrap(err, errors.KindData, "")
		}
		return b, len(b) / constant.SizeofWChar, nil
	case KindBinary, KindLongBinary:
		b, ok := v.([]byte)
		if !ok {
			return nil, 0, errors.TypeMismatch("binary", v)
		}
		return b, len(b), nil
	case KindBit:
		b, ok := v.(bool)
		if !ok {
			return nil, 0, errors.TypeMismatch("boolean", v)
		}
		if b {
			return []byte{1}, 1, nil
		}
		return []byte{0}, 1, nil
	case KindInteger:
		n, ok := asInt64(v)
		if !ok || n < math.MinInt32 || n > math.MaxInt32 {
			return nil, 0, errors.TypeMismatch("32-bit integer", v)
		}
		buf := make([]byte, constant.SizeofLong)
		binary.LittleEndian.PutUint32(buf, uint32(int32(n)))
		return buf, len(buf), nil
	case KindBigInteger:
		n, ok := asInt64(v)
		if !ok {
			return nil, 0, errors.TypeMismatch("integer", v)
		}
		buf := make([]byte, constant.SizeofSBigInt)
		binary.LittleEndian.PutUint64(buf, uint64(n))
		return buf, len(buf), nil
	case KindDouble:
		var f float64
		switch x := v.(type) {
		case float64:
			f = x
		case float32:
			f = float64(x)
		default:
			n, ok := asInt64(v)
			if !ok {
				return nil, 0, errors.TypeMismatch("floating point", v)
			}
			f = float64(n)
		}
		buf := make([]byte, constant.SizeofDouble)
		binary.LittleEndian.PutUint64(buf, math.Float64bits(f))
		return buf, len(buf), nil
	case KindDecimal:
		var dec decimal.Decimal
		switch x := v.(type) {
		case decimal.Decimal:
			dec = x
		case *decimal.Decimal:
			if x == nil {
				return nil, 0, errors.TypeMismatch("decimal", v)
			}
			dec = *x
		default:
			return nil, 0, errors.TypeMismatch("decimal", v)
		}
		text := dec.String()
		digits := len(strings.TrimLeft(strings.Replace(text, ".", "", 1), "-"))
		return []byte(text), digits, nil
	case KindDate:
		var date Date
		switch x := v.(type) {
		case Date:
			date = x
		case time.Time:
			date = DateOf(x)
		default:
			return nil, 0, errors.TypeMismatch("date", v)
		}
		buf := make([]byte, constant.SizeofDate)
		misc.DateStruct{Year: int16(date.Year), Month: uint16(date.Month), Day: uint16(date.Day)}.Put(buf)
		return buf, len(buf), nil
	case KindTime:
		var clock TimeOfDay
		switch x := v.(type) {
		case TimeOfDay:
			clock = x
		case time.Time:
			clock = TimeOfDayOf(x)
		default:
			return nil, 0, errors.TypeMismatch("time", v)
		}
		buf := make([]byte, constant.SizeofTime)
		misc.TimeStruct{Hour: uint16(clock.Hour), Minute: uint16(clock.Minute), Second: uint16(clock.Second)}.Put(buf)
		return buf, len(buf), nil
	case KindTimestamp:
		var ts time.Time
		switch x := v.(type) {
		case time.Time:
			ts = x
		case Date:
			ts = x.In(d.location())
		default:
			return nil, 0, errors.TypeMismatch("datetime", v)
		}
		buf := make([]byte, constant.SizeofTimestamp)
		misc.NewTimestampStruct(ts).Put(buf)
		return buf, len(buf), nil
	case KindGUID:
		var u uuid.UUID
		switch x := v.(type) {
		case uuid.UUID:
			u = x
		case [16]byte:
			u = x
		default:
			return nil, 0, errors.TypeMismatch("GUID", v)
		}
		buf := make([]byte, constant.SizeofGUID)
		misc.PutGUID(buf, u)
		return buf, len(buf), nil
	}
	return nil, 0, errors.NewInternalError("no encoder for %s", d.Kind)
}

// Unmarshal decodes the bytes of one slot; data is already cut to the length
// recorded in the slot's indicator.
func (d *TypeDescriptor) Unmarshal(data []byte) (interface{}, error) {
	if !d.VariableWidth() && len(data) < d.ElementSize {
		return nil, errors.NewInternalError("%s slot holds %d bytes, need %d", d.Kind, len(data), d.ElementSize)
	}
	switch d.Kind {
	case KindString, KindLongString:
		return string(data), nil
	case KindUnicode, KindLongUnicode:
		s, err := misc.DecodeWide(data)
		if err != nil {
			return nil, errors.Wrap(err, errors.KindData, "")
		}
		return s, nil
	case KindBinary, KindLongBinary:
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	case KindBit:
		return data[0] != 0, nil
	case KindInteger:
		return int64(int32(binary.LittleEndian.Uint32(data))), nil
	case KindBigInteger:
		return int64(binary.LittleEndian.Uint64(data)), nil
	case KindDouble:
		return math.Float64frombits(binary.LittleEndian.Uint64(data)), nil
	case KindDecimal:
		dec, err := decimal.NewFromString(string(data))
		if err != nil {
			return nil, errors.Wrap(err, errors.KindData, "invalid decimal text %q", string(data))
		}
		return dec, nil
	case KindDate:
		ds := misc.ReadDateStruct(data)
		return Date{Year: int(ds.Year), Month: time.Month(ds.Month), Day: int(ds.Day)}, nil
	case KindTime:
		ts := misc.ReadTimeStruct(data)
		return TimeOfDay{Hour: int(ts.Hour), Minute: int(ts.Minute), Second: int(ts.Second)}, nil
	case KindTimestamp:
		return misc.ReadTimestampStruct(data).Time(d.location()), nil
	case KindGUID:
		return misc.ReadGUID(data), nil
	}
	return nil, errors.NewInternalError("no decoder for %s", d.Kind)
}

func (d *TypeDescriptor) location() *time.Location {
	if d.loc == nil {
		return time.UTC
	}
	return d.loc
}

func asInt64(v interface{}) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		if uint64(x) > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		if x > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	}
	return 0, false
}
