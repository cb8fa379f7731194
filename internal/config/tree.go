// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"math"
	"reflect"
)

// Tree is a nested settings document: string keys mapped to scalars
// (string, bool, number), sequences, nested trees or nil.
//
// Trees decoded from JSON hold float64 numbers, []any sequences and
// map[string]any objects; trees built in code may also use Tree, []string and
// any integer kind.
type Tree map[string]any

// Merge deep-merges overrides onto base, left to right, and returns a new
// tree. Later overrides take precedence over earlier ones.
//
// For every key of an override:
//   - an empty override value (nil, "", numeric zero, empty sequence) is
//     skipped when the accumulated value is present and neither side is a
//     bool;
//   - two maps are merged recursively;
//   - anything else replaces the accumulated value, sequences included.
//
// false is never empty, so a boolean override always wins. Merge never
// mutates its arguments and the result shares no maps or slices with them.
func Merge(base Tree, overrides ...Tree) Tree {
	acc := mergeMaps(map[string]any{}, base)
	for _, override := range overrides {
		acc = mergeMaps(acc, override)
	}

	return Tree(acc)
}

func mergeMaps(acc map[string]any, override map[string]any) map[string]any {
	for key, value := range override {
		prev, exists := acc[key]
		if isEmpty(value) && exists && isPresent(prev) && !isBool(value) && !isBool(prev) {
			continue
		}

		prevMap, prevIsMap := asMap(prev)
		valueMap, valueIsMap := asMap(value)
		if prevIsMap && valueIsMap {
			merged := mergeMaps(mergeMaps(map[string]any{}, prevMap), valueMap)
			if _, ok := value.(Tree); ok {
				acc[key] = Tree(merged)
			} else {
				acc[key] = merged
			}
			continue
		}

		acc[key] = deepCopy(value)
	}

	return acc
}

// isEmpty reports whether v is treated as an unset placeholder.
func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return false
	case float64:
		return val == 0 || math.IsNaN(val)
	case float32:
		return val == 0 || math.IsNaN(float64(val))
	case json.Number:
		f, err := val.Float64()
		return err == nil && f == 0
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Slice, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}

	return false
}

// isPresent reports whether v holds a meaningful value. Maps always do,
// even empty ones.
func isPresent(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}

	return !isEmpty(v)
}

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Tree:
		return m, m != nil
	case map[string]any:
		return m, m != nil
	}

	return nil, false
}

// deepCopy clones maps and sequences so the merged tree owns its values.
// Nested Tree values stay Tree.
func deepCopy(v any) any {
	switch val := v.(type) {
	case Tree:
		return Tree(deepCopyMap(val))
	case map[string]any:
		return deepCopyMap(val)
	case []any:
		if val == nil {
			return val
		}
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopy(item)
		}
		return out
	case []string:
		if val == nil {
			return val
		}
		out := make([]string, len(val))
		copy(out, val)
		return out
	}

	return v
}

func deepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopy(v)
	}

	return out
}

// Clone returns a deep copy of t.
func (t Tree) Clone() Tree {
	return Tree(deepCopyMap(t))
}

// Lookup walks nested maps along path (e.g. "discord", "token") and returns
// the value found there.
func (t Tree) Lookup(path ...string) (any, bool) {
	var current any = map[string]any(t)
	for _, key := range path {
		m, ok := asMap(current)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}

	return current, true
}
