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

import "fmt"

// Kind enumerates the buffer layouts the engine can bind. The set is closed:
// every Kind has exactly one descriptor in a Registry.
type Kind int

const (
	KindString Kind = iota + 1
	KindLongString
	KindUnicode
	KindLongUnicode
	KindBinary
	KindLongBinary
	KindBit
	KindInteger
	KindBigInteger
	KindDouble
	KindDecimal
	KindDate
	KindTime
	KindTimestamp
	KindGUID
)

var kindNames = map[Kind]string{
	KindString:      "String",
	KindLongString:  "LongString",
	KindUnicode:     "Unicode",
	KindLongUnicode: "LongUnicode",
	KindBinary:      "Binary",
	KindLongBinary:  "LongBinary",
	KindBit:         "Bit",
	KindInteger:     "Integer",
	KindBigInteger:  "BigInteger",
	KindDouble:      "Double",
	KindDecimal:     "Decimal",
	KindDate:        "Date",
	KindTime:        "Time",
	KindTimestamp:   "Timestamp",
	KindGUID:        "GUID",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsLong reports whether the kind is a long column whose buffer size follows
// the output size policy instead of the reported column size.
func (k Kind) IsLong() bool {
	switch k {
	case KindLongString, KindLongUnicode, KindLongBinary:
		return true
	}
	return false
}

// IsInteger reports whether the kind holds exact whole numbers.
func (k Kind) IsInteger() bool {
	return k == KindInteger || k == KindBigInteger
}

// IsNumber reports whether the kind belongs to the NUMBER api type.
func (k Kind) IsNumber() bool {
	switch k {
	case KindInteger, KindBigInteger, KindDouble, KindDecimal:
		return true
	}
	return false
}

var allKinds = []Kind{
	KindString, KindLongString, KindUnicode, KindLongUnicode, KindBinary, KindLongBinary,
	KindBit, KindInteger, KindBigInteger, KindDouble, KindDecimal,
	KindDate, KindTime, KindTimestamp, KindGUID,
}
