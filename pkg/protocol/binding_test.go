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

package protocol_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/protocol"
)

func newBinding(ctype constant.CType, stride, rows int) *protocol.Binding {
	indicators := make([]int64, rows)
	for i := range indicators {
		indicators[i] = constant.NullData
	}
	return &protocol.Binding{
		CType:      ctype,
		Direction:  constant.ParamInput,
		Buffer:     make([]byte, stride*rows),
		Stride:     stride,
		Indicators: indicators,
	}
}

func TestBindingRoundTrip(t *testing.T) {
	ts := time.Date(2022, 3, 4, 5, 6, 7, 800, time.UTC)
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	testCases := []struct {
		name   string
		ctype  constant.CType
		stride int
		in     interface{}
		expect interface{}
	}{
		{"char", constant.CTypeChar, 16, "hello", "hello"},
		{"char from int", constant.CTypeChar, 16, int64(42), "42"},
		{"wide", constant.CTypeWChar, 32, "héllo", "héllo"},
		{"binary", constant.CTypeBinary, 8, []byte{1, 2, 3}, []byte{1, 2, 3}},
		{"long", constant.CTypeLong, constant.SizeofLong, -7, int64(-7)},
		{"bigint", constant.CTypeSBigInt, constant.SizeofSBigInt, int64(1) << 40, int64(1) << 40},
		{"bigint from text", constant.CTypeSBigInt, constant.SizeofSBigInt, []byte("12"), int64(12)},
		{"double", constant.CTypeDouble, constant.SizeofDouble, 2.5, 2.5},
		{"bit", constant.CTypeBit, constant.SizeofBit, true, true},
		{"date", constant.CTypeDate, constant.SizeofDate, ts, time.Date(2022, 3, 4, 0, 0, 0, 0, time.UTC)},
		{"time", constant.CTypeTime, constant.SizeofTime, ts, "05:06:07"},
		{"timestamp", constant.CTypeTimestamp, constant.SizeofTimestamp, ts, ts},
		{"guid", constant.CTypeGUID, constant.SizeofGUID, id, id.String()},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b := newBinding(testCase.ctype, testCase.stride, 2)
			truncated, err := b.WriteValue(1, testCase.in)
			require.NoError(t, err)
			assert.False(t, truncated)
			out, err := b.ReadValue(1)
			require.NoError(t, err)
			assert.Equal(t, testCase.expect, out)

			untouched, err := b.ReadValue(0)
			require.NoError(t, err)
			assert.Nil(t, untouched)
		})
	}
}

func TestBindingTruncation(t *testing.T) {
	b := newBinding(constant.CTypeChar, 4, 1)
	truncated, err := b.WriteValue(0, "abcdef")
	require.NoError(t, err)
	assert.True(t, truncated)
	assert.Equal(t, int64(6), b.Indicators[0])
	assert.Equal(t, []byte{'a', 'b', 'c', 0}, b.Buffer)
}

func TestBindingNull(t *testing.T) {
	b := newBinding(constant.CTypeLong, constant.SizeofLong, 1)
	_, err := b.WriteValue(0, 3)
	require.NoError(t, err)
	_, err = b.WriteValue(0, nil)
	require.NoError(t, err)
	assert.Equal(t, constant.NullData, b.Indicators[0])
}

func TestBindingErrors(t *testing.T) {
	b := newBinding(constant.CTypeLong, constant.SizeofLong, 1)
	_, err := b.WriteValue(0, int64(1)<<40)
	assert.Error(t, err)
	_, err = b.WriteValue(0, "abc")
	assert.Error(t, err)
	_, err = b.WriteValue(1, 1)
	assert.Error(t, err)
	_, err = b.ReadValue(-1)
	assert.Error(t, err)
}

func TestBindingDirection(t *testing.T) {
	b := &protocol.Binding{Direction: constant.ParamInputOutput}
	assert.True(t, b.IsInput())
	assert.True(t, b.IsOutput())
	b.Direction = constant.ParamOutput
	assert.False(t, b.IsInput())
	b.Direction = constant.ParamInput
	assert.False(t, b.IsOutput())
}
