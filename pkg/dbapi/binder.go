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
	"github.com/cectc/dbbind/pkg/errors"
	"github.com/cectc/dbbind/pkg/log"
	"github.com/cectc/dbbind/pkg/protocol"
	"github.com/cectc/dbbind/pkg/variable"
)

// bindParameters sets slot arrayPos of the parameter Variables from values,
// creating, replacing or reusing Variables as needed, and binds every
// Variable that is not bound yet. numElements is the batch size. With
// deferTypes a NULL does not create a Variable so that a later row may decide
// the type.
func (c *Cursor) bindParameters(values []interface{}, numElements, arrayPos int, deferTypes bool) error {
	if arrayPos == 0 && len(values) < len(c.paramVars) {
		c.paramVars = c.paramVars[:len(values)]
		rc := c.stmt.ResetParams()
		if err := protocol.Check(c.stmt, rc, "Cursor.bindParameters(): reset parameters"); err != nil {
			return err
		}
		for _, v := range c.paramVars {
			if v != nil {
				v.Unbind()
			}
		}
	}
	if c.logSQL {
		log.Debugf("bind variables (%d)", arrayPos)
	}

	for i, value := range values {
		var orig *variable.Variable
		if i < len(c.paramVars) {
			orig = c.paramVars[i]
		} else {
			c.paramVars = append(c.paramVars, nil)
		}
		v, err := c.bindParameter(numElements, arrayPos, value, orig, deferTypes)
		if err != nil {
			return err
		}
		if c.logSQL {
			log.Debugf("    %d => %#v", i+1, value)
		}
		if v != nil {
			c.paramVars[i] = v
		} else {
			v = orig
		}
		if v != nil && v.Position() == variable.Unbound {
			if err := v.BindParameter(c.stmt, i+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// bindParameter resolves the Variable for one parameter. It returns the
// Variable replacing orig, or nil when orig (possibly nil) stays in place.
func (c *Cursor) bindParameter(numElements, arrayPos int, value interface{}, orig *variable.Variable, deferTypes bool) (*variable.Variable, error) {
	direct, isVar := value.(*variable.Variable)

	if orig != nil {
		switch {
		case isVar:
			if direct == orig {
				return nil, nil
			}
			direct.Unbind()
			return direct, nil
		case numElements > orig.NumElements():
			// the batch outgrew the Variable
			v, err := variable.New(orig.Type(), numElements, orig.Size(), orig.Scale())
			if err != nil {
				return nil, err
			}
			if err := v.Set(arrayPos, value); err != nil {
				return nil, err
			}
			return v, nil
		}
		err := orig.Set(arrayPos, value)
		if err == nil {
			return nil, nil
		}
		// rows already bound cannot be re-typed
		if arrayPos > 0 || !errors.IsRebindable(err) {
			return nil, err
		}
		log.Debugf("rebinding parameter of type %s: %v", orig.Type(), err)
	}

	if isVar {
		direct.Unbind()
		return direct, nil
	}
	if value == nil && deferTypes {
		return nil, nil
	}
	desc, err := c.registry.ResolveByValue(value)
	if err != nil {
		return nil, err
	}
	v, err := variable.New(desc, numElements, 0, 0)
	if err != nil {
		return nil, err
	}
	if err := v.Set(arrayPos, value); err != nil {
		return nil, err
	}
	return v, nil
}
