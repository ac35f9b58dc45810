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

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindHierarchy(t *testing.T) {
	testCases := []struct {
		kind   Kind
		target *Error
		expect bool
	}{
		{KindData, ErrDatabase, true},
		{KindData, ErrError, true},
		{KindData, ErrInterface, false},
		{KindInterface, ErrError, true},
		{KindInterface, ErrDatabase, false},
		{KindNotSupported, ErrDatabase, true},
		{KindProgramming, ErrProgramming, true},
		{KindWarning, ErrError, false},
		{KindWarning, ErrWarning, true},
		{KindDatabase, ErrData, false},
	}
	for _, c := range testCases {
		t.Run(c.kind.String()+"/"+c.target.Kind.String(), func(t *testing.T) {
			err := error(&Error{Kind: c.kind, Message: "boom"})
			assert.Equal(t, c.expect, stderrors.Is(err, c.target))
		})
	}
}

func TestReasonSentinels(t *testing.T) {
	err := TypeMismatch("integer", "abc")
	assert.True(t, stderrors.Is(err, ErrTypeMismatch))
	assert.True(t, stderrors.Is(err, ErrData))
	assert.False(t, stderrors.Is(err, ErrDataTruncated))
	assert.Equal(t, "DataError: expecting integer data, got string", err.Error())

	truncated := DataTruncated(2, 0, 40, 10)
	assert.True(t, stderrors.Is(truncated, ErrDataTruncated))
	assert.True(t, stderrors.Is(truncated, ErrDatabase))
	assert.Contains(t, truncated.Error(), "column 2 (0) truncated (need 40, have 10)")

	unsupported := UnsupportedType(-155, "unhandled data type %d", -155)
	assert.True(t, stderrors.Is(unsupported, ErrNotSupported))
	assert.Equal(t, -155, unsupported.Code)
}

func TestReasonOfWrapped(t *testing.T) {
	err := pkgerrors.WithMessage(IndexOutOfRange(3, 2), "binding row")
	assert.Equal(t, ReasonIndexOutOfRange, ReasonOf(err))
	assert.True(t, IsRebindable(err))
	assert.False(t, IsRebindable(OutOfMemory("array size too large")))
	assert.False(t, IsRebindable(stderrors.New("plain")))
	assert.Equal(t, ReasonNone, ReasonOf(nil))
}

type causeOnly struct{ cause error }

func (c causeOnly) Error() string { return "cause only: " + c.cause.Error() }
func (c causeOnly) Cause() error { return c.cause }

func TestReasonOfCauseChains(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		reason Reason
	}{
		{"wrap", pkgerrors.Wrap(TypeMismatch("string", 1), "row 0"), ReasonTypeMismatch},
		{"cause only", causeOnly{IndexOutOfRange(3, 2)}, ReasonIndexOutOfRange},
		{"fmt over cause", fmt.Errorf("bind: %w", causeOnly{OutOfMemory("too large")}), ReasonOutOfMemory},
		{"cause over fmt", causeOnly{fmt.Errorf("bind: %w", IndexOutOfRange(1, 0))}, ReasonIndexOutOfRange},
		{"plain cause", causeOnly{stderrors.New("plain")}, ReasonNone},
	}
	for _, c := range testCases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.reason, ReasonOf(c.err))
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := stderrors.New("dial tcp: refused")
	err := Wrap(cause, KindOperational, "")
	assert.Equal(t, "dial tcp: refused", err.Message)
	assert.Equal(t, cause, stderrors.Unwrap(err))
	assert.True(t, stderrors.Is(err, cause))

	withContext := Diagnostics(KindDatabase, "syntax error", "Cursor.Execute()").WithContext("Cursor.Prepare()")
	assert.Equal(t, "DatabaseError: syntax error (Cursor.Prepare())", withContext.Error())
}
