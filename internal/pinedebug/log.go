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

// Package pinedebug provides the small slog wiring shared between the
// VM and cmd/pinevm: a plain *slog.Logger with a text or JSON handler
// rather than a bespoke logging interface.
package pinedebug

import (
	"log/slog"
	"os"
)

// NewLogger builds a logger writing to os.Stderr, in either text or
// JSON form, at the given level. Used by cmd/pinevm's --log-json and
// --debug flags.
func NewLogger(jsonFormat bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
