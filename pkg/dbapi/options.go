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
	"github.com/cectc/dbbind/pkg/config"
	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/types"
)

type options struct {
	registry   *types.Registry
	autoCommit bool
	cursor     config.Cursor
}

// Option customizes Connect.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		cursor: config.Cursor{
			ArraySize:      constant.DefaultArraySize,
			BindArraySize:  constant.DefaultBindArraySize,
			LongBufferSize: constant.DefaultLongBufferSize,
		},
	}
}

// WithRegistry shares a type registry between connections. Without it every
// connection builds its own.
func WithRegistry(r *types.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithAutoCommit commits every statement as it completes.
func WithAutoCommit(on bool) Option {
	return func(o *options) {
		o.autoCommit = on
	}
}

// WithCursorDefaults sets the array sizes, long column buffer size and SQL
// logging of the cursors a connection creates. Zero values keep the defaults.
func WithCursorDefaults(c config.Cursor) Option {
	return func(o *options) {
		if c.ArraySize > 0 {
			o.cursor.ArraySize = c.ArraySize
		}
		if c.BindArraySize > 0 {
			o.cursor.BindArraySize = c.BindArraySize
		}
		if c.LongBufferSize > 0 {
			o.cursor.LongBufferSize = c.LongBufferSize
		}
		o.cursor.LogSQL = c.LogSQL
	}
}

// VarOption customizes a Variable created by Cursor.Var.
type VarOption func(*varOptions)

type varOptions struct {
	size         int
	scale        int
	arraySize    int
	inConverter  func(interface{}) (interface{}, error)
	outConverter func(interface{}) (interface{}, error)
	input        bool
	output       bool
}

func VarSize(size int) VarOption {
	return func(o *varOptions) { o.size = size }
}

func VarScale(scale int) VarOption {
	return func(o *varOptions) { o.scale = scale }
}

// VarArraySize sets the number of slots, the cursor's bind array size by
// default.
func VarArraySize(n int) VarOption {
	return func(o *varOptions) { o.arraySize = n }
}

func VarInConverter(fn func(interface{}) (interface{}, error)) VarOption {
	return func(o *varOptions) { o.inConverter = fn }
}

func VarOutConverter(fn func(interface{}) (interface{}, error)) VarOption {
	return func(o *varOptions) { o.outConverter = fn }
}

// VarDirection marks the Variable as input, output or both. Input only is the
// default.
func VarDirection(input, output bool) VarOption {
	return func(o *varOptions) {
		o.input = input
		o.output = output
	}
}
