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

package sqlbridge

import (
	"database/sql"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cectc/dbbind/pkg/config"
	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/protocol"
)

// columnType is the part of *sql.ColumnType a column description needs.
type columnType interface {
	Name() string
	DatabaseTypeName() string
	Length() (int64, bool)
	DecimalSize() (int64, int64, bool)
	Nullable() (bool, bool)
	ScanType() reflect.Type
}

var typeNames = map[string]constant.SQLType{
	"CHAR":              constant.SQLType_CHAR,
	"BPCHAR":            constant.SQLType_CHAR,
	"NCHAR":             constant.SQLType_CHAR,
	"CHARACTER":         constant.SQLType_CHAR,
	"VARCHAR":           constant.SQLType_VARCHAR,
	"NVARCHAR":          constant.SQLType_VARCHAR,
	"CHARACTER VARYING": constant.SQLType_VARCHAR,
	"NAME":              constant.SQLType_VARCHAR,
	"TEXT":              constant.SQLType_LONGVARCHAR,
	"TINYTEXT":          constant.SQLType_LONGVARCHAR,
	"MEDIUMTEXT":        constant.SQLType_LONGVARCHAR,
	"LONGTEXT":          constant.SQLType_LONGVARCHAR,
	"CLOB":              constant.SQLType_LONGVARCHAR,
	"JSON":              constant.SQLType_LONGVARCHAR,
	"JSONB":             constant.SQLType_LONGVARCHAR,
	"XML":               constant.SQLType_LONGVARCHAR,
	"ENUM":              constant.SQLType_VARCHAR,
	"SET":               constant.SQLType_VARCHAR,
	"BINARY":            constant.SQLType_BINARY,
	"VARBINARY":         constant.SQLType_VARBINARY,
	"BLOB":              constant.SQLType_LONGVARBINARY,
	"TINYBLOB":          constant.SQLType_LONGVARBINARY,
	"MEDIUMBLOB":        constant.SQLType_LONGVARBINARY,
	"LONGBLOB":          constant.SQLType_LONGVARBINARY,
	"BYTEA":             constant.SQLType_LONGVARBINARY,
	"BIT":               constant.SQLType_BIT,
	"BOOL":              constant.SQLType_BIT,
	"BOOLEAN":           constant.SQLType_BIT,
	"TINYINT":           constant.SQLType_TINYINT,
	"UNSIGNED TINYINT":  constant.SQLType_SMALLINT,
	"SMALLINT":          constant.SQLType_SMALLINT,
	"INT2":              constant.SQLType_SMALLINT,
	"YEAR":              constant.SQLType_SMALLINT,
	"UNSIGNED SMALLINT": constant.SQLType_INTEGER,
	"INT":               constant.SQLType_INTEGER,
	"INTEGER":           constant.SQLType_INTEGER,
	"INT4":              constant.SQLType_INTEGER,
	"MEDIUMINT":         constant.SQLType_INTEGER,
	"UNSIGNED INT":      constant.SQLType_BIGINT,
	"BIGINT":            constant.SQLType_BIGINT,
	"INT8":              constant.SQLType_BIGINT,
	"UNSIGNED BIGINT":   constant.SQLType_BIGINT,
	"DECIMAL":           constant.SQLType_DECIMAL,
	"UNSIGNED DECIMAL":  constant.SQLType_DECIMAL,
	"NUMERIC":           constant.SQLType_NUMERIC,
	"FLOAT":             constant.SQLType_REAL,
	"FLOAT4":            constant.SQLType_REAL,
	"REAL":              constant.SQLType_REAL,
	"DOUBLE":            constant.SQLType_DOUBLE,
	"FLOAT8":            constant.SQLType_DOUBLE,
	"DOUBLE PRECISION":  constant.SQLType_DOUBLE,
	"DATE":              constant.SQLType_TYPE_DATE,
	"TIME":              constant.SQLType_TYPE_TIME,
	"TIMETZ":            constant.SQLType_TYPE_TIME,
	"DATETIME":          constant.SQLType_TYPE_TIMESTAMP,
	"TIMESTAMP":         constant.SQLType_TYPE_TIMESTAMP,
	"TIMESTAMPTZ":       constant.SQLType_TYPE_TIMESTAMP,
	"UUID":              constant.SQLType_GUID,
}

// defaultSizes apply when neither the driver nor the declared type tells the
// column size.
var defaultSizes = map[constant.SQLType]int{
	constant.SQLType_CHAR:           4000,
	constant.SQLType_VARCHAR:        4000,
	constant.SQLType_BINARY:         4000,
	constant.SQLType_VARBINARY:      4000,
	constant.SQLType_BIT:            1,
	constant.SQLType_TINYINT:        3,
	constant.SQLType_SMALLINT:       5,
	constant.SQLType_INTEGER:        10,
	constant.SQLType_BIGINT:         19,
	constant.SQLType_DECIMAL:        38,
	constant.SQLType_NUMERIC:        38,
	constant.SQLType_REAL:           7,
	constant.SQLType_DOUBLE:         15,
	constant.SQLType_TYPE_DATE:      10,
	constant.SQLType_TYPE_TIME:      8,
	constant.SQLType_TYPE_TIMESTAMP: 26,
	constant.SQLType_GUID:           36,
}

// splitTypeName separates a declared type such as "DECIMAL(10,2)" into its
// name and modifiers.
func splitTypeName(declared string) (name string, size, scale int) {
	name = strings.ToUpper(strings.TrimSpace(declared))
	open := strings.Index(name, "(")
	if open < 0 {
		return name, 0, 0
	}
	closing := strings.Index(name[open:], ")")
	if closing < 0 {
		return strings.TrimSpace(name[:open]), 0, 0
	}
	modifiers := strings.Split(name[open+1:open+closing], ",")
	size, _ = strconv.Atoi(strings.TrimSpace(modifiers[0]))
	if len(modifiers) > 1 {
		scale, _ = strconv.Atoi(strings.TrimSpace(modifiers[1]))
	}
	return strings.TrimSpace(name[:open]), size, scale
}

var scanTypes = map[reflect.Type]constant.SQLType{
	reflect.TypeOf(time.Time{}):       constant.SQLType_TYPE_TIMESTAMP,
	reflect.TypeOf(sql.NullTime{}):    constant.SQLType_TYPE_TIMESTAMP,
	reflect.TypeOf(sql.NullInt64{}):   constant.SQLType_BIGINT,
	reflect.TypeOf(sql.NullInt32{}):   constant.SQLType_BIGINT,
	reflect.TypeOf(sql.NullInt16{}):   constant.SQLType_BIGINT,
	reflect.TypeOf(sql.NullFloat64{}): constant.SQLType_DOUBLE,
	reflect.TypeOf(sql.NullBool{}):    constant.SQLType_BIT,
	reflect.TypeOf(sql.NullString{}):  constant.SQLType_LONGVARCHAR,
}

func scanSQLType(t reflect.Type) constant.SQLType {
	if t == nil {
		return constant.SQLType_LONGVARCHAR
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if sqlType, ok := scanTypes[t]; ok {
		return sqlType
	}
	switch t.Kind() {
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return constant.SQLType_LONGVARBINARY
		}
	case reflect.Bool:
		return constant.SQLType_BIT
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return constant.SQLType_BIGINT
	case reflect.Float32, reflect.Float64:
		return constant.SQLType_DOUBLE
	}
	return constant.SQLType_LONGVARCHAR
}

func describeColumn(backend config.Backend, ct columnType) protocol.ColumnDesc {
	name, declaredSize, declaredScale := splitTypeName(ct.DatabaseTypeName())
	sqlType, ok := typeNames[name]
	if !ok {
		sqlType = scanSQLType(ct.ScanType())
	}
	switch {
	case backend == config.SQLite && name == "INTEGER":
		// sqlite integers are 64 bit whatever the declaration
		sqlType = constant.SQLType_BIGINT
	case backend == config.MySQL && name == "BIT":
		sqlType = constant.SQLType_BINARY
	}

	desc := protocol.ColumnDesc{
		Name:     ct.Name(),
		SQLType:  sqlType,
		Size:     declaredSize,
		Scale:    declaredScale,
		Nullable: constant.NullableUnknown,
	}
	if length, ok := ct.Length(); ok && length > 0 && length <= math.MaxInt32 {
		desc.Size = int(length)
	}
	if precision, scale, ok := ct.DecimalSize(); ok && precision > 0 && precision <= math.MaxInt32 && scale <= precision {
		desc.Size = int(precision)
		desc.Scale = int(scale)
	}
	if desc.Size <= 0 {
		desc.Size = defaultSizes[sqlType]
	}
	if nullable, ok := ct.Nullable(); ok {
		if nullable {
			desc.Nullable = constant.NullableNulls
		} else {
			desc.Nullable = constant.NullableNoNulls
		}
	}
	return desc
}
