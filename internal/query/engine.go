// Package query runs compiled jq queries against decoded schema fragments.
package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// Query is a parsed and compiled jq expression.
type Query struct {
	expr string
	code *gojq.Code
}

// Compile parses and compiles a jq expression.
func Compile(expr string) (*Query, error) {
	parsed, err := gojq.Parse(expr)
	if err != nil {
		var parseErr *gojq.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("invalid jq expression at position %d: %w", parseErr.Offset, err)
		}
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}

	return &Query{expr: expr, code: code}, nil
}

// MustCompile is like Compile but panics on error. Use it for package-level queries.
func MustCompile(expr string) *Query {
	q, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return q
}

// String returns the source expression.
func (q *Query) String() string {
	return q.expr
}

// All runs the query and returns every non-null value it emits. The input must
// be a value produced by encoding/json (map[string]any, []any, float64, ...).
func (q *Query) All(input any) ([]any, error) {
	var values []any
	iter := q.code.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return values, formatJQError(q.expr, err)
		}
		if v == nil {
			continue
		}
		values = append(values, v)
	}
	return values, nil
}

// First runs the query and returns its first non-null value.
// ok is false when the query emits nothing but null.
func (q *Query) First(input any) (any, bool, error) {
	values, err := q.All(input)
	if err != nil {
		return nil, false, err
	}
	if len(values) == 0 {
		return nil, false, nil
	}
	return values[0], true, nil
}

// Bool runs a query expected to produce a single boolean.
func (q *Query) Bool(input any) (bool, error) {
	v, ok, err := q.First(input)
	if err != nil || !ok {
		return false, err
	}
	b, isBool := v.(bool)
	if !isBool {
		return false, fmt.Errorf("jq %s: expected boolean, got %T", q.expr, v)
	}
	return b, nil
}

// formatJQError adds the expression and a hint for common path errors.
func formatJQError(expr string, err error) error {
	var haltErr *gojq.HaltError
	if errors.As(err, &haltErr) {
		return fmt.Errorf("jq %s: query halted: %w", expr, err)
	}

	errStr := err.Error()
	var hint string
	switch {
	case strings.Contains(errStr, "cannot iterate over: null"):
		hint = " (the path may not exist in this schema)"
	case strings.Contains(errStr, "cannot index") && strings.Contains(errStr, "with"):
		hint = " (field not found or wrong type)"
	}

	if hint == "" {
		return fmt.Errorf("jq %s: %w", expr, err)
	}
	return fmt.Errorf("jq %s: %w%s", expr, err, hint)
}
