package tools

import "fmt"

// CompactOptions controls how schema documents are shortened for tool output.
type CompactOptions struct {
	MaxEnumItems int // Trim enum lists to N values (0 = no limit)
	MaxStringLen int // Truncate description strings longer than N chars (0 = no limit)
}

// Default values for schema compaction.
const (
	DefaultMaxEnumItems = 10
	DefaultMaxStringLen = 300
)

// DefaultCompactOptions returns the default compaction settings.
func DefaultCompactOptions() *CompactOptions {
	return &CompactOptions{
		MaxEnumItems: DefaultMaxEnumItems,
		MaxStringLen: DefaultMaxStringLen,
	}
}

// CompactSchema shortens a decoded schema document. Only "enum" lists and
// "description" strings are touched; composition keywords (oneOf, allOf, ...)
// are kept whole so the document still reads the same way.
// If opts is nil, DefaultCompactOptions() is used.
func CompactSchema(v any, opts *CompactOptions) any {
	if opts == nil {
		opts = DefaultCompactOptions()
	}
	return compactNode(v, opts)
}

func compactNode(v any, opts *CompactOptions) any {
	switch val := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, child := range val {
			switch k {
			case "enum":
				result[k] = compactEnum(child, opts)
			case "description":
				result[k] = compactString(child, opts)
			default:
				result[k] = compactNode(child, opts)
			}
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = compactNode(item, opts)
		}
		return result
	default:
		return v
	}
}

func compactEnum(v any, opts *CompactOptions) any {
	values, ok := v.([]any)
	if !ok || opts.MaxEnumItems <= 0 || len(values) <= opts.MaxEnumItems {
		return v
	}
	result := make([]any, opts.MaxEnumItems+1)
	copy(result, values[:opts.MaxEnumItems])
	result[opts.MaxEnumItems] = fmt.Sprintf("... (%d more values)", len(values)-opts.MaxEnumItems)
	return result
}

func compactString(v any, opts *CompactOptions) any {
	s, ok := v.(string)
	if !ok || opts.MaxStringLen <= 0 || len(s) <= opts.MaxStringLen {
		return v
	}
	return s[:opts.MaxStringLen] + fmt.Sprintf("... (%d more chars)", len(s)-opts.MaxStringLen)
}
