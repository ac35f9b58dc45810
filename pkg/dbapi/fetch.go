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
	"context"
	"iter"

	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/errors"
	"github.com/cectc/dbbind/pkg/protocol"
)

func (c *Cursor) verifyFetch() error {
	if err := c.isOpen(); err != nil {
		return err
	}
	if c.resultVars == nil {
		return errors.NewInterfaceError("not a query")
	}
	return nil
}

// fetch refills the row buffer with the next array of rows.
func (c *Cursor) fetch(ctx context.Context) error {
	if c.resultVars == nil {
		return errors.NewInterfaceError("query not executed")
	}
	rc := c.stmt.Fetch(ctx)
	if rc == constant.ReturnNoData {
		c.actualRows = 0
		c.exhausted = true
	} else if err := protocol.Check(c.stmt, rc, "Cursor.fetch()"); err != nil {
		return err
	} else if c.actualRows < c.fetchArraySize {
		c.exhausted = true
	}
	if c.actualRows < 0 {
		c.actualRows = 0
	}
	c.rowNum = 0
	return nil
}

// moreRows reports whether a row is buffered, fetching the next array when
// the buffer is drained and the result is not exhausted.
func (c *Cursor) moreRows(ctx context.Context) (bool, error) {
	if c.rowNum >= c.actualRows {
		if !c.exhausted {
			if err := c.fetch(ctx); err != nil {
				return false, err
			}
		}
		if c.rowNum >= c.actualRows {
			return false, nil
		}
	}
	return true, nil
}

// createRow materializes the current buffered row.
func (c *Cursor) createRow() (interface{}, error) {
	values := make([]interface{}, len(c.resultVars))
	for i, v := range c.resultVars {
		value, err := v.Get(c.rowNum)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	c.rowNum++
	c.rowCount++
	if c.rowFactory != nil {
		return c.rowFactory(values)
	}
	return values, nil
}

func (c *Cursor) multiFetch(ctx context.Context, limit int) ([]interface{}, error) {
	rows := make([]interface{}, 0)
	for n := 0; limit == 0 || n < limit; n++ {
		more, err := c.moreRows(ctx)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
		row, err := c.createRow()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FetchOne returns the next row, or nil when there are no more rows. Rows are
// []interface{} unless a row factory is set.
func (c *Cursor) FetchOne(ctx context.Context) (interface{}, error) {
	if err := c.verifyFetch(); err != nil {
		return nil, err
	}
	more, err := c.moreRows(ctx)
	if err != nil || !more {
		return nil, err
	}
	return c.createRow()
}

// FetchMany returns up to n rows, ArraySize rows when n is not positive.
func (c *Cursor) FetchMany(ctx context.Context, n int) ([]interface{}, error) {
	if err := c.verifyFetch(); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = c.arraySize
	}
	return c.multiFetch(ctx, n)
}

// FetchAll returns the remaining rows.
func (c *Cursor) FetchAll(ctx context.Context) ([]interface{}, error) {
	if err := c.verifyFetch(); err != nil {
		return nil, err
	}
	return c.multiFetch(ctx, 0)
}

// Rows iterates over the remaining rows. Iteration stops after the first
// error, which is yielded with a nil row.
func (c *Cursor) Rows(ctx context.Context) iter.Seq2[interface{}, error] {
	return func(yield func(interface{}, error) bool) {
		if err := c.verifyFetch(); err != nil {
			yield(nil, err)
			return
		}
		for {
			more, err := c.moreRows(ctx)
			if err != nil {
				yield(nil, err)
				return
			}
			if !more {
				return
			}
			row, err := c.createRow()
			if !yield(row, err) || err != nil {
				return
			}
		}
	}
}
