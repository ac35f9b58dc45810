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

// ApiType groups kinds under one of the DB-API type objects so that column
// descriptions can be compared against STRING, BINARY, NUMBER, DATETIME and
// ROWID.
type ApiType struct {
	name  string
	kinds []Kind
}

var (
	STRING   = &ApiType{name: "STRING", kinds: []Kind{KindString, KindLongString, KindUnicode, KindLongUnicode, KindGUID}}
	BINARY   = &ApiType{name: "BINARY", kinds: []Kind{KindBinary, KindLongBinary}}
	NUMBER   = &ApiType{name: "NUMBER", kinds: []Kind{KindDouble, KindBigInteger, KindDecimal, KindInteger, KindBit}}
	DATETIME = &ApiType{name: "DATETIME", kinds: []Kind{KindTimestamp, KindDate, KindTime}}
	ROWID    = &ApiType{name: "ROWID"}
)

func (t *ApiType) Name() string {
	return t.name
}

func (t *ApiType) String() string {
	return "<ApiType " + t.name + ">"
}

// Kinds lists the kinds belonging to t.
func (t *ApiType) Kinds() []Kind {
	out := make([]Kind, len(t.kinds))
	copy(out, t.kinds)
	return out
}

// Equal compares t against a Kind, a descriptor or another API type.
func (t *ApiType) Equal(other interface{}) bool {
	switch o := other.(type) {
	case *ApiType:
		return o == t
	case *TypeDescriptor:
		return o != nil && t.contains(o.Kind)
	case Kind:
		return t.contains(o)
	}
	return false
}

func (t *ApiType) contains(k Kind) bool {
	for _, kind := range t.kinds {
		if kind == k {
			return true
		}
	}
	return false
}
