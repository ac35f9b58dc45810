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
	"strings"
)

func callStatement(name string, numArgs int, function bool) string {
	var sb strings.Builder
	sb.WriteString("{")
	if function {
		sb.WriteString("? = ")
	}
	sb.WriteString("CALL ")
	sb.WriteString(name)
	if numArgs > 0 {
		sb.WriteString("(")
		for i := 0; i < numArgs; i++ {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString("?")
		}
		sb.WriteString(")")
	}
	sb.WriteString("}")
	return sb.String()
}

// CallProc calls a stored procedure and returns the first slot of every
// parameter Variable, so output parameters show the values the procedure set.
func (c *Cursor) CallProc(ctx context.Context, name string, args ...interface{}) ([]interface{}, error) {
	if err := c.Execute(ctx, callStatement(name, len(args), false), args...); err != nil {
		return nil, err
	}
	results := make([]interface{}, len(c.paramVars))
	for i, v := range c.paramVars {
		if v == nil {
			continue
		}
		value, err := v.Get(0)
		if err != nil {
			return nil, err
		}
		results[i] = value
	}
	return results, nil
}

// CallFunc calls a stored function and returns its result, decoded as
// returnType.
func (c *Cursor) CallFunc(ctx context.Context, name string, returnType interface{}, args ...interface{}) (interface{}, error) {
	if err := c.isOpen(); err != nil {
		return nil, err
	}
	ret, err := c.Var(returnType, VarArraySize(1), VarDirection(false, true))
	if err != nil {
		return nil, err
	}
	params := make([]interface{}, 0, len(args)+1)
	params = append(params, ret)
	params = append(params, args...)
	if err := c.Execute(ctx, callStatement(name, len(args), true), params...); err != nil {
		return nil, err
	}
	return ret.Get(0)
}
