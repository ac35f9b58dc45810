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
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/misc"
)

// Binding describes a bound array of slots: Rows() slots of Stride bytes in
// Buffer, with one length or NullData indicator per slot.
type Binding struct {
	CType      constant.CType
	SQLType    constant.SQLType
	ColumnSize int
	Scale      int
	Direction  constant.ParamDirection
	Buffer     []byte
	Stride     int
	Indicators []int64
}

// Rows returns the number of slots.
func (b *Binding) Rows() int {
	return len(b.Indicators)
}

// Slot returns the bytes of slot row.
func (b *Binding) Slot(row int) ([]byte, error) {
	if row < 0 || row >= len(b.Indicators) {
		return nil, errors.Errorf("slot %d out of range [0, %d)", row, len(b.Indicators))
	}
	start := row * b.Stride
	end := start + b.Stride
	if end > len(b.Buffer) {
		return nil, errors.Errorf("slot %d exceeds buffer of %d bytes", row, len(b.Buffer))
	}
	return b.Buffer[start:end:end], nil
}

// IsInput reports whether the driver reads the slots before executing.
func (b *Binding) IsInput() bool {
	return b.Direction != constant.ParamOutput
}

// IsOutput reports whether the driver writes the slots after executing.
func (b *Binding) IsOutput() bool {
	return b.Direction == constant.ParamOutput || b.Direction == constant.ParamInputOutput
}

// WriteValue stores a driver-side value into slot row. Character and binary
// data that does not fit is cut to the slot while the indicator keeps the full
// length; truncated reports that case.
func (b *Binding) WriteValue(row int, v interface{}) (truncated bool, err error) {
	slot, err := b.Slot(row)
	if err != nil {
		return false, err
	}
	if v == nil {
		b.Indicators[row] = constant.NullData
		return false, nil
	}
	switch b.CType {
	case constant.CTypeChar:
		text, err := toText(v)
		if err != nil {
			return false, err
		}
		return b.writeVariable(row, slot, []byte(text), 1), nil
	case constant.CTypeWChar:
		text, err := toText(v)
		if err != nil {
			return false, err
		}
		wide, err := misc.EncodeWide(text)
		if err != nil {
			return false, err
		}
		return b.writeVariable(row, slot, wide, constant.SizeofWChar), nil
	case constant.CTypeBinary:
		var data []byte
		switch x := v.(type) {
		case []byte:
			data = x
		case string:
			data = []byte(x)
		default:
			return false, errors.Errorf("cannot store %T as binary", v)
		}
		return b.writeVariable(row, slot, data, 0), nil
	}

	size, ok := b.CType.FixedSize()
	if !ok {
		return false, errors.Errorf("unsupported C type %s", b.CType)
	}
	if len(slot) < size {
		return false, errors.Errorf("slot of %d bytes too small for %s", len(slot), b.CType)
	}
	switch b.CType {
	case constant.CTypeLong:
		n, err := toInt64(v)
		if err != nil {
			return false, err
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return false, errors.Errorf("numeric value %d out of range", n)
		}
		binary.LittleEndian.PutUint32(slot, uint32(int32(n)))
	case constant.CTypeSBigInt:
		n, err := toInt64(v)
		if err != nil {
			return false, err
		}
		binary.LittleEndian.PutUint64(slot, uint64(n))
	case constant.CTypeDouble:
		f, err := toFloat64(v)
		if err != nil {
			return false, err
		}
		binary.LittleEndian.PutUint64(slot, math.Float64bits(f))
	case constant.CTypeBit:
		on, err := toBool(v)
		if err != nil {
			return false, err
		}
		slot[0] = 0
		if on {
			slot[0] = 1
		}
	case constant.CTypeDate:
		t, err := toTime(v)
		if err != nil {
			return false, err
		}
		misc.DateStruct{Year: int16(t.Year()), Month: uint16(t.Month()), Day: uint16(t.Day())}.Put(slot)
	case constant.CTypeTime:
		t, err := toTime(v)
		if err != nil {
			return false, err
		}
		misc.TimeStruct{Hour: uint16(t.Hour()), Minute: uint16(t.Minute()), Second: uint16(t.Second())}.Put(slot)
	case constant.CTypeTimestamp:
		t, err := toTime(v)
		if err != nil {
			return false, err
		}
		misc.NewTimestampStruct(t).Put(slot)
	case constant.CTypeGUID:
		u, err := toUUID(v)
		if err != nil {
			return false, err
		}
		misc.PutGUID(slot, u)
	}
	b.Indicators[row] = int64(size)
	return false, nil
}

func (b *Binding) writeVariable(row int, slot, data []byte, terminator int) bool {
	capacity := len(slot) - terminator
	if capacity < 0 {
		capacity = 0
	}
	n := copy(slot[:capacity], data)
	for i := n; i < n+terminator && i < len(slot); i++ {
		slot[i] = 0
	}
	b.Indicators[row] = int64(len(data))
	return len(data) > capacity
}

// ReadValue loads slot row as a driver-side value: string, []byte, int64,
// float64, bool or time.Time. Time of day values are returned as "15:04:05"
// text since most backends accept that form.
func (b *Binding) ReadValue(row int) (interface{}, error) {
	slot, err := b.Slot(row)
	if err != nil {
		return nil, err
	}
	indicator := b.Indicators[row]
	if indicator == constant.NullData {
		return nil, nil
	}
	length := int(indicator)
	if length > len(slot) {
		length = len(slot)
	}
	switch b.CType {
	case constant.CTypeChar:
		return string(slot[:length]), nil
	case constant.CTypeWChar:
		return misc.DecodeWide(slot[:length])
	case constant.CTypeBinary:
		out := make([]byte, length)
		copy(out, slot[:length])
		return out, nil
	}
	size, ok := b.CType.FixedSize()
	if !ok || len(slot) < size {
		return nil, errors.Errorf("cannot read %s from slot of %d bytes", b.CType, len(slot))
	}
	switch b.CType {
	case constant.CTypeLong:
		return int64(int32(binary.LittleEndian.Uint32(slot))), nil
	case constant.CTypeSBigInt:
		return int64(binary.LittleEndian.Uint64(slot)), nil
	case constant.CTypeDouble:
		return math.Float64frombits(binary.LittleEndian.Uint64(slot)), nil
	case constant.CTypeBit:
		return slot[0] != 0, nil
	case constant.CTypeDate:
		d := misc.ReadDateStruct(slot)
		return time.Date(int(d.Year), time.Month(d.Month), int(d.Day), 0, 0, 0, 0, time.UTC), nil
	case constant.CTypeTime:
		t := misc.ReadTimeStruct(slot)
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second), nil
	case constant.CTypeTimestamp:
		return misc.ReadTimestampStruct(slot).Time(time.UTC), nil
	case constant.CTypeGUID:
		return misc.ReadGUID(slot).String(), nil
	}
	return nil, errors.Errorf("unsupported C type %s", b.CType)
}

func toText(v interface{}) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case int:
		return strconv.Itoa(x), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	case bool:
		if x {
			return "1", nil
		}
		return "0", nil
	case time.Time:
		return x.Format(misc.TimestampFormat), nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return "", errors.Errorf("cannot store %T as text", v)
}

func toInt64(v interface{}) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, errors.Errorf("numeric value %d out of range", x)
		}
		return int64(x), nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case float64:
		if x != math.Trunc(x) {
			return 0, errors.Errorf("fractional value %v for integer column", x)
		}
		return int64(x), nil
	case []byte:
		return strconv.ParseInt(string(x), 10, 64)
	case string:
		return strconv.ParseInt(x, 10, 64)
	}
	return 0, errors.Errorf("cannot store %T as integer", v)
}

func toFloat64(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case []byte:
		return strconv.ParseFloat(string(x), 64)
	case string:
		return strconv.ParseFloat(x, 64)
	}
	n, err := toInt64(v)
	if err != nil {
		return 0, errors.Errorf("cannot store %T as double", v)
	}
	return float64(n), nil
}

func toBool(v interface{}) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case []byte:
		return strconv.ParseBool(string(x))
	case string:
		return strconv.ParseBool(x)
	}
	n, err := toInt64(v)
	if err != nil {
		return false, errors.Errorf("cannot store %T as bit", v)
	}
	return n != 0, nil
}

func toTime(v interface{}) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case []byte:
		return misc.ParseTemporal(string(x), time.UTC)
	case string:
		return misc.ParseTemporal(x, time.UTC)
	}
	return time.Time{}, errors.Errorf("cannot store %T as date/time", v)
}

func toUUID(v interface{}) (uuid.UUID, error) {
	switch x := v.(type) {
	case uuid.UUID:
		return x, nil
	case [16]byte:
		return x, nil
	case []byte:
		if len(x) == 16 {
			return uuid.FromBytes(x)
		}
		return uuid.ParseBytes(x)
	case string:
		return uuid.Parse(x)
	}
	return uuid.Nil, errors.Errorf("cannot store %T as GUID", v)
}
