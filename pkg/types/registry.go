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
	"math"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/errors"
)

// Registry maps application values, type tokens and wire type codes to type
// descriptors. It is immutable once built and safe for concurrent use.
type Registry struct {
	loc       *time.Location
	byKind    map[Kind]*TypeDescriptor
	byWire    map[constant.SQLType]Kind
	byGoType  map[reflect.Type]Kind
	stringKnd Kind
}

// Option customizes a Registry under construction.
type Option func(*Registry)

// WithLocation sets the zone timestamps are decoded in, UTC by default.
func WithLocation(loc *time.Location) Option {
	return func(r *Registry) {
		r.loc = loc
	}
}

// WithWideStrings makes text values bind as UTF-16 wide characters instead of
// single byte characters.
func WithWideStrings() Option {
	return func(r *Registry) {
		r.stringKnd = KindUnicode
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{loc: time.UTC, stringKnd: KindString}
	for _, opt := range opts {
		opt(r)
	}
	descriptors := []TypeDescriptor{
		{Kind: KindString, SQLType: constant.SQLType_VARCHAR, CType: constant.CTypeChar, DefaultSize: 255},
		{Kind: KindLongString, SQLType: constant.SQLType_LONGVARCHAR, CType: constant.CTypeChar, DefaultSize: constant.DefaultLongBufferSize},
		{Kind: KindUnicode, SQLType: constant.SQLType_WVARCHAR, CType: constant.CTypeWChar, DefaultSize: 255},
		{Kind: KindLongUnicode, SQLType: constant.SQLType_WLONGVARCHAR, CType: constant.CTypeWChar, DefaultSize: constant.DefaultLongBufferSize},
		{Kind: KindBinary, SQLType: constant.SQLType_VARBINARY, CType: constant.CTypeBinary, DefaultSize: 255},
		{Kind: KindLongBinary, SQLType: constant.SQLType_LONGVARBINARY, CType: constant.CTypeBinary, DefaultSize: constant.DefaultLongBufferSize},
		{Kind: KindBit, SQLType: constant.SQLType_BIT, CType: constant.CTypeBit, ElementSize: constant.SizeofBit, DefaultSize: 1},
		{Kind: KindInteger, SQLType: constant.SQLType_INTEGER, CType: constant.CTypeLong, ElementSize: constant.SizeofLong, DefaultSize: 10},
		{Kind: KindBigInteger, SQLType: constant.SQLType_BIGINT, CType: constant.CTypeSBigInt, ElementSize: constant.SizeofSBigInt, DefaultSize: 19},
		{Kind: KindDouble, SQLType: constant.SQLType_DOUBLE, CType: constant.CTypeDouble, ElementSize: constant.SizeofDouble, DefaultSize: 53},
		{Kind: KindDecimal, SQLType: constant.SQLType_DECIMAL, CType: constant.CTypeChar, DefaultSize: 18},
		{Kind: KindDate, SQLType: constant.SQLType_TYPE_DATE, CType: constant.CTypeDate, ElementSize: constant.SizeofDate, DefaultSize: 10},
		{Kind: KindTime, SQLType: constant.SQLType_TYPE_TIME, CType: constant.CTypeTime, ElementSize: constant.SizeofTime, DefaultSize: 8},
		{Kind: KindTimestamp, SQLType: constant.SQLType_TYPE_TIMESTAMP, CType: constant.CTypeTimestamp, ElementSize: constant.SizeofTimestamp, DefaultSize: 29, DefaultScale: 9},
		{Kind: KindGUID, SQLType: constant.SQLType_GUID, CType: constant.CTypeGUID, ElementSize: constant.SizeofGUID, DefaultSize: 36},
	}
	r.byKind = make(map[Kind]*TypeDescriptor, len(descriptors))
	for i := range descriptors {
		d := descriptors[i]
		d.loc = r.loc
		r.byKind[d.Kind] = &d
	}
	r.byWire = map[constant.SQLType]Kind{
		constant.SQLType_BIGINT:         KindBigInteger,
		constant.SQLType_BIT:            KindBit,
		constant.SQLType_TINYINT:        KindInteger,
		constant.SQLType_SMALLINT:       KindInteger,
		constant.SQLType_INTEGER:        KindInteger,
		constant.SQLType_REAL:           KindDouble,
		constant.SQLType_FLOAT:          KindDouble,
		constant.SQLType_DOUBLE:         KindDouble,
		constant.SQLType_DECIMAL:        KindDecimal,
		constant.SQLType_NUMERIC:        KindDecimal,
		constant.SQLType_TYPE_DATE:      KindDate,
		constant.SQLType_TYPE_TIME:      KindTime,
		constant.SQLType_TYPE_TIMESTAMP: KindTimestamp,
		constant.SQLType_CHAR:           KindString,
		constant.SQLType_VARCHAR:        KindString,
		constant.SQLType_LONGVARCHAR:    KindLongString,
		constant.SQLType_WCHAR:          KindUnicode,
		constant.SQLType_WVARCHAR:       KindUnicode,
		constant.SQLType_WLONGVARCHAR:   KindLongUnicode,
		constant.SQLType_BINARY:         KindBinary,
		constant.SQLType_VARBINARY:      KindBinary,
		constant.SQLType_LONGVARBINARY:  KindLongBinary,
		constant.SQLType_GUID:           KindGUID,
	}
	r.byGoType = map[reflect.Type]Kind{
		reflect.TypeOf(""):                r.stringKnd,
		reflect.TypeOf([]byte(nil)):       KindBinary,
		reflect.TypeOf(false):             KindBit,
		reflect.TypeOf(int8(0)):           KindInteger,
		reflect.TypeOf(int16(0)):          KindInteger,
		reflect.TypeOf(int32(0)):          KindInteger,
		reflect.TypeOf(uint8(0)):          KindInteger,
		reflect.TypeOf(uint16(0)):         KindInteger,
		reflect.TypeOf(int(0)):            KindBigInteger,
		reflect.TypeOf(int64(0)):          KindBigInteger,
		reflect.TypeOf(uint(0)):           KindBigInteger,
		reflect.TypeOf(uint32(0)):         KindBigInteger,
		reflect.TypeOf(uint64(0)):         KindBigInteger,
		reflect.TypeOf(float32(0)):        KindDouble,
		reflect.TypeOf(float64(0)):        KindDouble,
		reflect.TypeOf(decimal.Decimal{}): KindDecimal,
		reflect.TypeOf(Date{}):            KindDate,
		reflect.TypeOf(TimeOfDay{}):       KindTime,
		reflect.TypeOf(time.Time{}):       KindTimestamp,
		reflect.TypeOf(uuid.UUID{}):       KindGUID,
	}
	return r
}

// Location is the zone timestamps are decoded in.
func (r *Registry) Location() *time.Location {
	return r.loc
}

// ByKind returns the descriptor registered for k.
func (r *Registry) ByKind(k Kind) (*TypeDescriptor, error) {
	d, ok := r.byKind[k]
	if !ok {
		return nil, errors.UnsupportedType(int(k), "unknown variable kind %d", int(k))
	}
	return d, nil
}

// Default returns the descriptor used for NULL and text values.
func (r *Registry) Default() *TypeDescriptor {
	return r.byKind[r.stringKnd]
}

// Descriptors lists every descriptor in Kind order.
func (r *Registry) Descriptors() []*TypeDescriptor {
	descriptors := make([]*TypeDescriptor, 0, len(allKinds))
	for _, k := range allKinds {
		descriptors = append(descriptors, r.byKind[k])
	}
	return descriptors
}

func (r *Registry) mustKind(k Kind) *TypeDescriptor {
	return r.byKind[k]
}

// ResolveByValue infers the narrowest descriptor able to hold v.
func (r *Registry) ResolveByValue(v interface{}) (*TypeDescriptor, error) {
	switch x := v.(type) {
	case nil, string:
		return r.Default(), nil
	case []byte:
		return r.mustKind(KindBinary), nil
	case bool:
		return r.mustKind(KindBit), nil
	case int8, int16, int32, uint8, uint16:
		return r.mustKind(KindInteger), nil
	case int, int64, uint, uint32, uint64:
		n, ok := asInt64(x)
		if !ok {
			return nil, errors.UnsupportedType(0, "integer value %v out of range", x)
		}
		if n >= math.MinInt32 && n <= math.MaxInt32 {
			return r.mustKind(KindInteger), nil
		}
		return r.mustKind(KindBigInteger), nil
	case float32, float64:
		return r.mustKind(KindDouble), nil
	case decimal.Decimal, *decimal.Decimal:
		return r.mustKind(KindDecimal), nil
	case Date:
		return r.mustKind(KindDate), nil
	case TimeOfDay:
		return r.mustKind(KindTime), nil
	case time.Time:
		return r.mustKind(KindTimestamp), nil
	case uuid.UUID:
		return r.mustKind(KindGUID), nil
	}
	return nil, errors.UnsupportedType(0, "value of type %T not supported", v)
}

// ResolveByTypeToken maps an explicit type request to a descriptor. A token is
// a Kind, a descriptor of this registry, an API type or a reflect.Type.
func (r *Registry) ResolveByTypeToken(token interface{}) (*TypeDescriptor, error) {
	switch t := token.(type) {
	case Kind:
		return r.ByKind(t)
	case *TypeDescriptor:
		if t != nil && r.byKind[t.Kind] == t {
			return t, nil
		}
		if t != nil {
			return r.ByKind(t.Kind)
		}
	case *ApiType:
		if t != nil && len(t.kinds) > 0 {
			return r.ByKind(t.kinds[0])
		}
	case reflect.Type:
		if k, ok := r.byGoType[t]; ok {
			return r.mustKind(k), nil
		}
		return nil, errors.UnsupportedType(0, "type %s not supported", t)
	}
	return nil, errors.UnsupportedType(0, "type token %v (%T) not supported", token, token)
}

// ResolveByWireCode maps a column type code reported by the driver.
func (r *Registry) ResolveByWireCode(code constant.SQLType) (*TypeDescriptor, error) {
	k, ok := r.byWire[code]
	if !ok {
		return nil, errors.UnsupportedType(int(code), "unhandled data type %d", int(code))
	}
	if k == KindString && r.stringKnd == KindUnicode {
		k = KindUnicode
	}
	return r.mustKind(k), nil
}
