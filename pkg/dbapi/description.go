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

package dbapi

import (
	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/protocol"
	"github.com/cectc/dbbind/pkg/types"
)

// Column describes one column of the current result.
type Column struct {
	Name string
	// Type compares equal to one of STRING, BINARY, NUMBER, DATETIME through
	// ApiType.Equal.
	Type         *types.TypeDescriptor
	DisplaySize  int
	InternalSize int
	// Precision and Scale are zero for non numeric columns.
	Precision int
	Scale     int
	NullOK    bool
}

// Description describes the columns of the current result, nil when the last
// execution produced no result set.
func (c *Cursor) Description() ([]Column, error) {
	if err := c.isOpen(); err != nil {
		return nil, err
	}
	if c.resultVars == nil {
		return nil, nil
	}
	columns := make([]Column, len(c.resultVars))
	for i := range columns {
		col, err := c.describe(i + 1)
		if err != nil {
			return nil, err
		}
		columns[i] = col
	}
	return columns, nil
}

func (c *Cursor) describe(position int) (Column, error) {
	info, rc := c.stmt.DescribeCol(position)
	if err := protocol.Check(c.stmt, rc, "Cursor.Description(): get column info"); err != nil {
		return Column{}, err
	}
	desc, err := c.registry.ResolveByWireCode(info.SQLType)
	if err != nil {
		return Column{}, err
	}

	size := info.Size
	precision, scale := size, info.Scale
	switch desc.Kind {
	case types.KindBigInteger, types.KindBit, types.KindInteger, types.KindDouble, types.KindDecimal:
	default:
		precision, scale = 0, 0
	}

	displaySize := size
	switch desc.Kind {
	case types.KindBigInteger, types.KindInteger:
		displaySize = size + 1
	case types.KindDouble, types.KindDecimal:
		displaySize = size + 1
		if scale > 0 {
			displaySize++
		}
	}

	return Column{
		Name:         info.Name,
		Type:         desc,
		DisplaySize:  displaySize,
		InternalSize: size,
		Precision:    precision,
		Scale:        scale,
		NullOK:       info.Nullable != constant.NullableNoNulls,
	}, nil
}
