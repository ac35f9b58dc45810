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
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Kind places an error in the DB-API exception hierarchy.
type Kind int

const (
	KindWarning Kind = iota
	KindError
	KindInterface
	KindDatabase
	KindData
	KindOperational
	KindIntegrity
	KindInternal
	KindProgramming
	KindNotSupported
)

var kindNames = map[Kind]string{
	KindWarning:      "Warning",
	KindError:        "Error",
	KindInterface:    "InterfaceError",
	KindDatabase:     "DatabaseError",
	KindData:         "DataError",
	KindOperational:  "OperationalError",
	KindIntegrity:    "IntegrityError",
	KindInternal:     "InternalError",
	KindProgramming:  "ProgrammingError",
	KindNotSupported: "NotSupportedError",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) parent() (Kind, bool) {
	switch k {
	case KindInterface, KindDatabase:
		return KindError, true
	case KindData, KindOperational, KindIntegrity, KindInternal, KindProgramming, KindNotSupported:
		return KindDatabase, true
	}
	return 0, false
}

// IsA reports whether k is target or one of its descendants.
func (k Kind) IsA(target Kind) bool {
	for {
		if k == target {
			return true
		}
		parent, ok := k.parent()
		if !ok {
			return false
		}
		k = parent
	}
}

// Reason is the engine-level failure condition behind an error.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonTypeMismatch
	ReasonIndexOutOfRange
	ReasonDataTruncated
	ReasonOutOfMemory
	ReasonUnsupportedType
	ReasonDiagnostics
)

func (r Reason) String() string {
	switch r {
	case ReasonTypeMismatch:
		return "TypeMismatch"
	case ReasonIndexOutOfRange:
		return "IndexOutOfRange"
	case ReasonDataTruncated:
		return "DataTruncated"
	case ReasonOutOfMemory:
		return "OutOfMemory"
	case ReasonUnsupportedType:
		return "UnsupportedType"
	case ReasonDiagnostics:
		return "Diagnostics"
	default:
		return "None"
	}
}

// Error is the structured error surfaced by every layer of the engine.
type Error struct {
	Kind    Kind
	Reason  Reason
	Message string
	// Context names the internal operation that failed.
	Context string
	// SQLState and NativeCode come from the first diagnostic record, if any.
	SQLState   string
	NativeCode int32
	// Code carries a numeric detail such as an unknown wire type code.
	Code  int
	cause error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.Context != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Context)
		sb.WriteString(")")
	}
	return sb.String()
}

// Is matches sentinels by reason when the target carries one, otherwise by
// position in the kind hierarchy.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Reason != ReasonNone {
		return e.Reason == t.Reason
	}
	return e.Kind.IsA(t.Kind)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// WithContext returns a copy of e tagged with the failing operation.
func (e *Error) WithContext(context string) *Error {
	clone := *e
	clone.Context = context
	return &clone
}

var (
	ErrWarning      = &Error{Kind: KindWarning}
	ErrError        = &Error{Kind: KindError}
	ErrInterface    = &Error{Kind: KindInterface}
	ErrDatabase     = &Error{Kind: KindDatabase}
	ErrData         = &Error{Kind: KindData}
	ErrOperational  = &Error{Kind: KindOperational}
	ErrIntegrity    = &Error{Kind: KindIntegrity}
	ErrInternal     = &Error{Kind: KindInternal}
	ErrProgramming  = &Error{Kind: KindProgramming}
	ErrNotSupported = &Error{Kind: KindNotSupported}

	ErrTypeMismatch    = &Error{Reason: ReasonTypeMismatch}
	ErrIndexOutOfRange = &Error{Reason: ReasonIndexOutOfRange}
	ErrDataTruncated   = &Error{Reason: ReasonDataTruncated}
	ErrOutOfMemory     = &Error{Reason: ReasonOutOfMemory}
	ErrUnsupportedType = &Error{Reason: ReasonUnsupportedType}
)

func newError(kind Kind, reason Reason, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func NewInterfaceError(format string, args ...interface{}) *Error {
	return newError(KindInterface, ReasonNone, format, args...)
}

func NewDatabaseError(format string, args ...interface{}) *Error {
	return newError(KindDatabase, ReasonNone, format, args...)
}

func NewDataError(format string, args ...interface{}) *Error {
	return newError(KindData, ReasonNone, format, args...)
}

func NewOperationalError(format string, args ...interface{}) *Error {
	return newError(KindOperational, ReasonNone, format, args...)
}

func NewIntegrityError(format string, args ...interface{}) *Error {
	return newError(KindIntegrity, ReasonNone, format, args...)
}

func NewInternalError(format string, args ...interface{}) *Error {
	return newError(KindInternal, ReasonNone, format, args...)
}

func NewProgrammingError(format string, args ...interface{}) *Error {
	return newError(KindProgramming, ReasonNone, format, args...)
}

func NewNotSupportedError(format string, args ...interface{}) *Error {
	return newError(KindNotSupported, ReasonNone, format, args...)
}

// TypeMismatch reports a value whose shape does not fit the expected kind.
func TypeMismatch(expected string, value interface{}) *Error {
	return newError(KindData, ReasonTypeMismatch, "expecting %s data, got %T", expected, value)
}

// IndexOutOfRange reports access to a slot outside a Variable's array.
func IndexOutOfRange(pos, numElements int) *Error {
	e := newError(KindProgramming, ReasonIndexOutOfRange, "array size exceeded (position %d, size %d)", pos, numElements)
	e.Code = pos
	return e
}

// DataTruncated reports a slot whose driver-reported length exceeds its buffer.
func DataTruncated(column, pos int, need, have int64) *Error {
	e := newError(KindDatabase, ReasonDataTruncated, "column %d (%d) truncated (need %d, have %d)", column, pos, need, have)
	e.Code = column
	return e
}

// OutOfMemory reports a buffer request above the allocation ceiling.
func OutOfMemory(format string, args ...interface{}) *Error {
	return newError(KindInternal, ReasonOutOfMemory, format, args...)
}

// UnsupportedType reports a value, type token or wire code with no descriptor.
func UnsupportedType(code int, format string, args ...interface{}) *Error {
	e := newError(KindNotSupported, ReasonUnsupportedType, format, args...)
	e.Code = code
	return e
}

// Diagnostics builds the error raised for a failed protocol call.
func Diagnostics(kind Kind, message, context string) *Error {
	return &Error{Kind: kind, Reason: ReasonDiagnostics, Message: message, Context: context}
}

// Wrap attaches cause to a new taxonomy error of the given kind.
func Wrap(cause error, kind Kind, format string, args ...interface{}) *Error {
	e := newError(kind, ReasonNone, format, args...)
	e.cause = cause
	if e.Message == "" && cause != nil {
		e.Message = cause.Error()
	}
	return e
}

// ReasonOf returns the engine failure reason of err, or ReasonNone. Both
// Cause and Unwrap chains are followed.
func ReasonOf(err error) Reason {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Reason
		}
		if _, ok := err.(interface{ Cause() error }); ok {
			err = pkgerrors.Cause(err)
			continue
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ReasonNone
		}
		err = u.Unwrap()
	}
	return ReasonNone
}

// IsRebindable reports whether a failed in-place set may be recovered by
// allocating a fresh Variable.
func IsRebindable(err error) bool {
	switch ReasonOf(err) {
	case ReasonTypeMismatch, ReasonIndexOutOfRange:
		return true
	}
	return false
}
