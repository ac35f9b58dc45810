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
	"github.com/cectc/dbbind/pkg/variable"
)

// prepareResultSet creates and binds one Variable per result column of the
// current result. It leaves resultVars nil when the statement returned no
// result set.
func (c *Cursor) prepareResultSet() error {
	numColumns, rc := c.stmt.NumResultCols()
	if err := protocol.Check(c.stmt, rc, "Cursor.prepareResultSet(): determine number of columns"); err != nil {
		return err
	}
	if numColumns == 0 {
		return nil
	}

	c.fetchArraySize = c.arraySize
	rc = c.stmt.SetAttr(constant.AttrRowArraySize, c.fetchArraySize)
	if err := protocol.Check(c.stmt, rc, "Cursor.prepareResultSet(): set array size"); err != nil {
		return err
	}
	rc = c.stmt.SetAttr(constant.AttrRowsFetchedPtr, &c.actualRows)
	if err := protocol.Check(c.stmt, rc, "Cursor.prepareResultSet(): set rows fetched pointer"); err != nil {
		return err
	}

	vars := make([]*variable.Variable, numColumns)
	for position := 1; position <= numColumns; position++ {
		v, err := c.newResultVariable(position)
		if err != nil {
			return err
		}
		vars[position-1] = v
	}
	c.resultVars = vars
	c.rowCount = 0
	c.actualRows = -1
	c.rowNum = 0
	c.exhausted = false
	return nil
}

func (c *Cursor) newResultVariable(position int) (*variable.Variable, error) {
	col, rc := c.stmt.DescribeCol(position)
	if err := protocol.Check(c.stmt, rc, "Cursor.prepareResultSet(): get column info"); err != nil {
		return nil, err
	}
	desc, err := c.registry.ResolveByWireCode(col.SQLType)
	if err != nil {
		return nil, err
	}
	size := col.Size
	if desc.Kind.IsLong() {
		if c.outputSize > 0 && (c.outputSizeColumn == 0 || c.outputSizeColumn == position) {
			size = c.outputSize
		} else {
			size = c.longBufferSize
		}
	}
	v, err := variable.New(desc, c.fetchArraySize, size, col.Scale)
	if err != nil {
		return nil, err
	}
	if err := v.BindColumn(c.stmt, position); err != nil {
		return nil, err
	}
	return v, nil
}
