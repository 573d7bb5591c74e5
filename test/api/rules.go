/*
Copyright 2025 the test-api Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Rule is a field-scoped assertion evaluated against a decoded JSON object.
// The set of rule kinds is closed: each is a concrete type below and
// ValidateBusinessRules switches over them exhaustively.
type Rule interface {
	field() string
}

// Equals asserts data[Field] == Want.
type Equals struct {
	Field string
	Want  any
}

// NotEquals asserts data[Field] != Unwanted.
type NotEquals struct {
	Field    string
	Unwanted any
}

// Contains asserts the string form of data[Field] contains Substring.
type Contains struct {
	Field     string
	Substring string
}

// NotEmpty asserts data[Field] is present and non-empty.
type NotEmpty struct {
	Field string
}

// PositiveNumber asserts data[Field] is a number greater than zero.
type PositiveNumber struct {
	Field string
}

func (r Equals) field() string         { return r.Field }
func (r NotEquals) field() string      { return r.Field }
func (r Contains) field() string       { return r.Field }
func (r NotEmpty) field() string       { return r.Field }
func (r PositiveNumber) field() string { return r.Field }

// ValidateBusinessRules evaluates every rule against data and returns the
// human-readable violations, empty when all rules hold. A rule whose field is
// absent from data is reported as a missing-field violation, never skipped.
// Rules are evaluated in name order so the output is deterministic.
func ValidateBusinessRules(data map[string]any, rules map[string]Rule) []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}

	sort.Strings(names)

	var violations []string

	for _, name := range names {
		rule := rules[name]

		value, present := data[rule.field()]
		if !present {
			violations = append(violations, fmt.Sprintf("Missing required field: %s", rule.field()))
			continue
		}

		if msg := evaluate(name, rule, value); msg != "" {
			violations = append(violations, msg)
		}
	}

	return violations
}

// evaluate returns an empty string when the rule holds.
func evaluate(name string, rule Rule, value any) string {
	switch r := rule.(type) {
	case Equals:
		if !jsonEqual(value, r.Want) {
			return fmt.Sprintf("%s: Expected %v, got %v", name, r.Want, value)
		}
	case NotEquals:
		if jsonEqual(value, r.Unwanted) {
			return fmt.Sprintf("%s: Expected not %v, got %v", name, r.Unwanted, value)
		}
	case Contains:
		if !strings.Contains(fmt.Sprint(value), r.Substring) {
			return fmt.Sprintf("%s: Expected '%v' to contain '%s'", name, value, r.Substring)
		}
	case NotEmpty:
		if isEmpty(value) {
			return fmt.Sprintf("%s: Field '%s' should not be empty", name, r.Field)
		}
	case PositiveNumber:
		if !isPositiveNumber(value) {
			return fmt.Sprintf("%s: Field '%s' should be a positive number", name, r.Field)
		}
	}

	return ""
}

// jsonEqual compares a decoded JSON value with an expectation, tolerating the
// int/float64 mismatch between Go literals and decoded JSON numbers. Arrays
// and objects are compared structurally, an `==` on those would panic.
func jsonEqual(value, want any) bool {
	vn, vok := asNumber(value)
	wn, wok := asNumber(want)

	if vok && wok {
		return vn == wn
	}

	return reflect.DeepEqual(value, want)
}

func asNumber(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		if n, ok := asNumber(value); ok {
			return n == 0
		}

		return false
	}
}

func isPositiveNumber(value any) bool {
	n, ok := asNumber(value)
	return ok && n > 0
}
