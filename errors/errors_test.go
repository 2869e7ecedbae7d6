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

package errors

import "testing"

func TestWrapfPreservesKindAndBuildsPath(t *testing.T) {
	base := Newf(DivisionByZero, "divisor is zero")
	wrapped := Wrapf(base, "evaluate div_int")
	wrapped = Wrapf(wrapped, "kernel application")

	if !Is(wrapped, DivisionByZero) {
		t.Errorf("expected wrapped error to preserve DivisionByZero kind")
	}
	got := wrapped.Error()
	want := "Failed to kernel application: failed to evaluate div_int: divisor is zero"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapfOnPlainError(t *testing.T) {
	wrapped := Wrapf(errFixture{}, "decode expression")
	if !Is(wrapped, Internal) {
		t.Errorf("expected plain error wrapped as Internal kind")
	}
}

type errFixture struct{}

func (errFixture) Error() string { return "boom" }
