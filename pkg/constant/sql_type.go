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

// SQLType is the wire type code a call-level driver reports for a column or
// expects for a bound parameter.
type SQLType int16

const (
	SQLType_UNKNOWN        SQLType = 0
	SQLType_CHAR           SQLType = 1
	SQLType_NUMERIC        SQLType = 2
	SQLType_DECIMAL        SQLType = 3
	SQLType_INTEGER        SQLType = 4
	SQLType_SMALLINT       SQLType = 5
	SQLType_FLOAT          SQLType = 6
	SQLType_REAL           SQLType = 7
	SQLType_DOUBLE         SQLType = 8
	SQLType_DATETIME       SQLType = 9
	SQLType_VARCHAR        SQLType = 12
	SQLType_TYPE_DATE      SQLType = 91
	SQLType_TYPE_TIME      SQLType = 92
	SQLType_TYPE_TIMESTAMP SQLType = 93
	SQLType_LONGVARCHAR    SQLType = -1
	SQLType_BINARY         SQLType = -2
	SQLType_VARBINARY      SQLType = -3
	SQLType_LONGVARBINARY  SQLType = -4
	SQLType_BIGINT         SQLType = -5
	SQLType_TINYINT        SQLType = -6
	SQLType_BIT            SQLType = -7
	SQLType_WCHAR          SQLType = -8
	SQLType_WVARCHAR       SQLType = -9
	SQLType_WLONGVARCHAR   SQLType = -10
	SQLType_GUID           SQLType = -11
)

func (sqlType SQLType) String() string {
	switch sqlType {
	case SQLType_UNKNOWN:
		return "UNKNOWN"
	case SQLType_CHAR:
		return "CHAR"
	case SQLType_NUMERIC:
		return "NUMERIC"
	case SQLType_DECIMAL:
		return "DECIMAL"
	case SQLType_INTEGER:
		return "INTEGER"
	case SQLType_SMALLINT:
		return "SMALLINT"
	case SQLType_FLOAT:
		return "FLOAT"
	case SQLType_REAL:
		return "REAL"
	case SQLType_DOUBLE:
		return "DOUBLE"
	case SQLType_DATETIME:
		return "DATETIME"
	case SQLType_VARCHAR:
		return "VARCHAR"
	case SQLType_TYPE_DATE:
		return "DATE"
	case SQLType_TYPE_TIME:
		return "TIME"
	case SQLType_TYPE_TIMESTAMP:
		return "TIMESTAMP"
	case SQLType_LONGVARCHAR:
		return "LONGVARCHAR"
	case SQLType_BINARY:
		return "BINARY"
	case SQLType_VARBINARY:
		return "VARBINARY"
	case SQLType_LONGVARBINARY:
		return "LONGVARBINARY"
	case SQLType_BIGINT:
		return "BIGINT"
	case SQLType_TINYINT:
		return "TINYINT"
	case SQLType_BIT:
		return "BIT"
	case SQLType_WCHAR:
		return "WCHAR"
	case SQLType_WVARCHAR:
		return "WVARCHAR"
	case SQLType_WLONGVARCHAR:
		return "WLONGVARCHAR"
	case SQLType_GUID:
		return "GUID"
	default:
		return fmt.Sprintf("%d", sqlType)
	}
}

// IsNumeric reports whether columns of this type carry precision and scale.
func (sqlType SQLType) IsNumeric() bool {
	switch sqlType {
	case SQLType_NUMERIC, SQLType_DECIMAL, SQLType_INTEGER, SQLType_SMALLINT,
		SQLType_FLOAT, SQLType_REAL, SQLType_DOUBLE, SQLType_BIGINT, SQLType_TINYINT:
		return true
	}
	return false
}
