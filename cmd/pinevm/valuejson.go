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

package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	pineerrors "github.com/pine-vm/pine/errors"
	"github.com/pine-vm/pine/value"
)

// jsonValue is the CLI's on-disk/stdin encoding of a Pine value. The
// core VM mandates no wire format (§6); this is purely an operational
// convenience for driving pinevm from the shell, mirroring exactly one
// of the two Pine value shapes per object: {"blob": "<base64>"} or
// {"list": [...]}.
type jsonValue struct {
	Blob *string     `json:"blob,omitempty"`
	List []jsonValue `json:"list,omitempty"`
}

func valueToJSON(v value.Value) jsonValue {
	switch x := v.(type) {
	case *value.Blob:
		s := base64.StdEncoding.EncodeToString(x.Bytes())
		return jsonValue{Blob: &s}
	case *value.List:
		out := make([]jsonValue, x.Len())
		for i, e := range x.Elems() {
			out[i] = valueToJSON(e)
		}
		return jsonValue{List: out}
	default:
		panic("unreachable value kind")
	}
}

func (j jsonValue) toValue() (value.Value, error) {
	switch {
	case j.Blob != nil:
		b, err := base64.StdEncoding.DecodeString(*j.Blob)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "decode base64 blob")
		}
		return value.NewBlob(b), nil
	case j.List != nil:
		elems := make([]value.Value, len(j.List))
		for i, e := range j.List {
			ev, err := e.toValue()
			if err != nil {
				return nil, pineerrors.Wrapf(err, "list element [%d]", i)
			}
			elems[i] = ev
		}
		return value.NewList(elems), nil
	default:
		// Neither field set: the empty list, {"list": null}, which
		// json.Unmarshal cannot distinguish from a wholly absent key.
		return value.EmptyList(), nil
	}
}

func readValueJSON(data []byte) (value.Value, error) {
	var j jsonValue
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse Pine value JSON: %w", err)
	}
	return j.toValue()
}

func writeValueJSON(v value.Value) ([]byte, error) {
	return json.MarshalIndent(valueToJSON(v), "", "  ")
}
