// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize maps each backend service's loosely-typed response
// body into a fixed view model. The four services evolve independently
// and may legally change a field's shape between releases: a list can
// arrive as a single scalar, a number as a string, a field can be absent.
// All of that variance is absorbed here, field by field, under a small
// set of coercion rules; the workflows and renderers only ever see the
// canonical shape. Every coercion that was not a passthrough is recorded
// as a Warning for diagnostics.
package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Rule identifies which coercion a Warning records.
type Rule string

const (
	// RuleScalarToList wraps a scalar as a one-element list.
	RuleScalarToList Rule = "scalar_to_list"

	// RuleCoerced converts a value to the target type (number to
	// string, string to number, unknown enum value to its default).
	RuleCoerced Rule = "coerced"

	// RuleClamped forces a numeric field into its documented range.
	RuleClamped Rule = "clamped"

	// RuleDropped discards a value that could not be coerced.
	RuleDropped Rule = "dropped"

	// RuleGenerated fills a missing identity field locally.
	RuleGenerated Rule = "generated"
)

// Warning records one non-canonical field shape that was successfully
// absorbed. Warnings are diagnostic, never user-facing.
type Warning struct {
	Field  string
	Rule   Rule
	Detail string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s (%s)", w.Field, w.Rule, w.Detail)
}

// EnvelopeError reports a response body lacking its required top-level key.
type EnvelopeError struct {
	Key string
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("response missing required %q field", e.Key)
}

// doc is a decoded response body with warning-collecting field accessors.
// Child docs share the parent's warning list.
type doc struct {
	fields   map[string]any
	path     string
	warnings *[]Warning
}

// parse decodes body into a doc. The gateway has already confirmed the
// body is a JSON object, so a decode failure here is a programming error
// upstream, reported plainly.
func parse(body []byte) (*doc, error) {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("decoding response body: %w", err)
	}
	var warnings []Warning
	return &doc{fields: fields, warnings: &warnings}, nil
}

func (d *doc) warn(key string, rule Rule, format string, args ...any) {
	*d.warnings = append(*d.warnings, Warning{
		Field:  d.fieldPath(key),
		Rule:   rule,
		Detail: fmt.Sprintf(format, args...),
	})
}

func (d *doc) fieldPath(key string) string {
	if d.path == "" {
		return key
	}
	return d.path + "." + key
}

// taken returns the collected warnings.
func (d *doc) taken() []Warning { return *d.warnings }

// has reports whether the key is present, regardless of shape.
func (d *doc) has(key string) bool {
	_, ok := d.fields[key]
	return ok
}

// String returns the field as a string. Absent or null yields "";
// numbers and booleans are formatted with a warning; composite values
// are dropped with a warning.
func (d *doc) String(key string) string {
	s, ok := d.stringify(key, d.fields[key])
	if !ok {
		return ""
	}
	return s
}

// stringify converts a leaf value to a string, warning on coercions.
func (d *doc) stringify(key string, v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case float64:
		d.warn(key, RuleCoerced, "number %v as string", val)
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		d.warn(key, RuleCoerced, "boolean %v as string", val)
		return strconv.FormatBool(val), true
	default:
		d.warn(key, RuleDropped, "unsupported shape %T", v)
		return "", false
	}
}

// StringList returns the field as a list of strings. Absent or null
// yields an empty list; a scalar becomes a one-element list; a list
// passes through preserving order, with non-string elements coerced or
// dropped element-wise. The result is never nil.
func (d *doc) StringList(key string) []string {
	switch v := d.fields[key].(type) {
	case nil:
		return []string{}
	case []any:
		out := make([]string, 0, len(v))
		for i, elem := range v {
			s, ok := d.stringify(fmt.Sprintf("%s[%d]", key, i), elem)
			if ok {
				out = append(out, s)
			}
		}
		return out
	default:
		s, ok := d.stringify(key, v)
		if !ok {
			return []string{}
		}
		d.warn(key, RuleScalarToList, "scalar wrapped as singleton list")
		return []string{s}
	}
}

// Number returns the field as a float64. Absent or null yields def;
// numeric strings are parsed with a warning; anything else is dropped
// with a warning.
func (d *doc) Number(key string, def float64) float64 {
	switch v := d.fields[key].(type) {
	case nil:
		return def
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			d.warn(key, RuleDropped, "unparseable number %q", v)
			return def
		}
		d.warn(key, RuleCoerced, "string %q as number", v)
		return f
	default:
		d.warn(key, RuleDropped, "unsupported shape %T", v)
		return def
	}
}

// ClampedNumber returns the field as a float64 forced into [lo, hi].
// Out-of-range values are clamped rather than rejected.
func (d *doc) ClampedNumber(key string, lo, hi, def float64) float64 {
	v := d.Number(key, def)
	switch {
	case v < lo:
		d.warn(key, RuleClamped, "%v below range, clamped to %v", v, lo)
		return lo
	case v > hi:
		d.warn(key, RuleClamped, "%v above range, clamped to %v", v, hi)
		return hi
	}
	return v
}

// Child returns the field as a nested doc, or nil when the field is
// absent or not an object.
func (d *doc) Child(key string) *doc {
	obj, ok := d.fields[key].(map[string]any)
	if !ok {
		return nil
	}
	return &doc{fields: obj, path: d.fieldPath(key), warnings: d.warnings}
}

// Records returns the field as a list of nested docs. A single object
// becomes a one-element list; non-object elements are dropped. The
// result is never nil.
func (d *doc) Records(key string) []*doc {
	child := func(i int, obj map[string]any) *doc {
		return &doc{
			fields:   obj,
			path:     d.fieldPath(fmt.Sprintf("%s[%d]", key, i)),
			warnings: d.warnings,
		}
	}

	switch v := d.fields[key].(type) {
	case nil:
		return []*doc{}
	case []any:
		out := make([]*doc, 0, len(v))
		for i, elem := range v {
			obj, ok := elem.(map[string]any)
			if !ok {
				d.warn(fmt.Sprintf("%s[%d]", key, i), RuleDropped, "element is not an object")
				continue
			}
			out = append(out, child(i, obj))
		}
		return out
	case map[string]any:
		d.warn(key, RuleScalarToList, "object wrapped as singleton list")
		return []*doc{child(0, v)}
	default:
		d.warn(key, RuleDropped, "unsupported shape %T", v)
		return []*doc{}
	}
}

// StringMap returns the field as a string-to-string map. Absent, null, or
// non-object values yield an empty map; leaf values are stringified.
func (d *doc) StringMap(key string) map[string]string {
	out := map[string]string{}
	obj, ok := d.fields[key].(map[string]any)
	if !ok {
		if d.has(key) && d.fields[key] != nil {
			d.warn(key, RuleDropped, "expected object, got %T", d.fields[key])
		}
		return out
	}
	for k, v := range obj {
		s, ok := d.stringify(key+"."+k, v)
		if ok {
			out[k] = s
		}
	}
	return out
}
