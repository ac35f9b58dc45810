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

// CType is the native buffer layout code used when binding a buffer to a
// parameter or result column.
type CType int16

const (
	CTypeChar      CType = 1
	CTypeWChar     CType = -8
	CTypeLong      CType = 4
	CTypeSBigInt   CType = -25
	CTypeDouble    CType = 8
	CTypeBit       CType = -7
	CTypeBinary    CType = -2
	CTypeDate      CType = 91
	CTypeTime      CType = 92
	CTypeTimestamp CType = 93
	CTypeGUID      CType = -11
)

// Fixed element sizes of the native layouts, zero for variable width ones.
const (
	SizeofLong      = 4
	SizeofSBigInt   = 8
	SizeofDouble    = 8
	SizeofBit       = 1
	SizeofDate      = 6
	SizeofTime      = 6
	SizeofTimestamp = 16
	SizeofGUID      = 16
	SizeofWChar     = 2
)

var cTypeSizes = map[CType]int{
	CTypeLong:      SizeofLong,
	CTypeSBigInt:   SizeofSBigInt,
	CTypeDouble:    SizeofDouble,
	CTypeBit:       SizeofBit,
	CTypeDate:      SizeofDate,
	CTypeTime:      SizeofTime,
	CTypeTimestamp: SizeofTimestamp,
	CTypeGUID:      SizeofGUID,
}

// FixedSize returns the element size of fixed width layouts.
func (t CType) FixedSize() (int, bool) {
	size, ok := cTypeSizes[t]
	return size, ok
}

func (t CType) String() string {
	switch t {
	case CTypeChar:
		return "SQL_C_CHAR"
	case CTypeWChar:
		return "SQL_C_WCHAR"
	case CTypeLong:
		return "SQL_C_LONG"
	case CTypeSBigInt:
		return "SQL_C_SBIGINT"
	case CTypeDouble:
		return "SQL_C_DOUBLE"
	case CTypeBit:
		return "SQL_C_BIT"
	case CTypeBinary:
		return "SQL_C_BINARY"
	case CTypeDate:
		return "SQL_C_TYPE_DATE"
	case CTypeTime:
		return "SQL_C_TYPE_TIME"
	case CTypeTimestamp:
		return "SQL_C_TYPE_TIMESTAMP"
	case CTypeGUID:
		return "SQL_C_GUID"
	default:
		return fmt.Sprintf("%d", t)
	}
}
