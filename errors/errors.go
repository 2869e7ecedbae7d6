// Copyright 2026 Pine Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors defines the structured error taxonomy shared across
// the Pine VM (§7 of the specification). The pivotal type is Error,
// whose Kind and Path give programmatic consumers a way to react to a
// failure without parsing strings, while Error() still composes a
// human-readable "Failed to <step>: <inner>" message.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind enumerates the taxonomy of §7.
type Kind int

const (
	// Internal marks a truly unreachable invariant violation.
	Internal Kind = iota
	// Decode marks a failure converting a Value to a higher-level shape.
	Decode
	// UnknownTag marks an expression tag outside the enumerated set.
	UnknownTag
	// UnknownKernel marks a KernelApplication naming an unrecognized primitive.
	UnknownKernel
	// TypeMismatch marks a kernel primitive receiving an unexpected shape.
	TypeMismatch
	// DivisionByZero marks div_int dividing by a zero divisor.
	DivisionByZero
	// Cancelled marks a cooperative cancellation from a poll hook.
	Cancelled
)

func (k Kind) String() string {
	switch k {
	case Internal:
		return "internal"
	case Decode:
		return "decode"
	case UnknownTag:
		return "unknown_tag"
	case UnknownKernel:
		return "unknown_kernel"
	case TypeMismatch:
		return "type_mismatch"
	case DivisionByZero:
		return "division_by_zero"
	case Cancelled:
		return "cancelled"
	default:
		return "invalid"
	}
}

// Error is the common Pine VM error type. It carries a Kind for
// programmatic dispatch, a Path describing where in the evaluation the
// failure occurred (outermost step first, innermost last),
// and an optional wrapped cause.
type Error struct {
	kind  Kind
	msg   string
	path  []string
	cause error
}

func (e *Error) Error() string {
	var b strings.Builder
	if len(e.path) > 0 {
		b.WriteString("Failed to ")
		b.WriteString(strings.Join(e.path, ": failed to "))
		b.WriteString(": ")
	}
	b.WriteString(e.msg)
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.cause }

// Kind reports the structured error kind.
func (e *Error) Kind() Kind { return e.kind }

// Path reports the sequence of steps that wrap this error, outermost
// first.
func (e *Error) Path() []string {
	out := make([]string, len(e.path))
	copy(out, e.path)
	return out
}

// Newf constructs an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrapf wraps cause with a new outermost step prepended to its Path, preserving
// cause's Kind when cause is itself a *Error, or using Internal when
// cause is a plain error (e.g. one crossing a package boundary that
// doesn't use this taxonomy).
func Wrapf(cause error, step string, args ...interface{}) *Error {
	formatted := fmt.Sprintf(step, args...)
	var inner *Error
	if errors.As(cause, &inner) {
		return &Error{
			kind:  inner.kind,
			msg:   inner.msg,
			path:  append([]string{formatted}, inner.path...),
			cause: inner.cause,
		}
	}
	return &Error{kind: Internal, msg: formatted, cause: cause}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.kind == kind
}
