package types

import (
	"fmt"
	"strings"
)

// Severity classifies a warning by what it cost the generated tool.
type Severity string

const (
	// SeverityAdvisory means nothing was dropped; the output may be less helpful.
	SeverityAdvisory Severity = "advisory"
	// SeveritySkipped means one parameter or output was left out of the tool.
	SeveritySkipped Severity = "skipped"
)

// Warning codes.
const (
	CodeMissingTitle           = "missing_title"
	CodeMissingDescription     = "missing_description"
	CodeMissingDefault         = "missing_default"
	CodeMissingNullable        = "missing_nullable"
	CodeMissingConformance     = "missing_conformance"
	CodeConformanceUnavailable = "conformance_unavailable"
	CodeEmptyProcessList       = "empty_process_list"
	CodeIncludedMissing        = "included_process_missing"
	CodeDuplicateProcess       = "duplicate_process_id"
	CodeUnmappedSchema         = "unmapped_schema"
	CodeFormatPathMissing      = "format_path_missing"
	CodeInvalidSchema          = "invalid_schema"
)

// Warning is a structured, collectible diagnostic raised while building a tool.
type Warning struct {
	Severity  Severity `json:"severity"`
	Code      string   `json:"code"`
	Server    string   `json:"server,omitempty"`
	Process   string   `json:"process,omitempty"`
	Parameter string   `json:"parameter,omitempty"`
	Message   string   `json:"message"`
}

func (w Warning) String() string {
	var loc []string
	if w.Server != "" {
		loc = append(loc, "server="+w.Server)
	}
	if w.Process != "" {
		loc = append(loc, "process="+w.Process)
	}
	if w.Parameter != "" {
		loc = append(loc, "parameter="+w.Parameter)
	}
	if len(loc) == 0 {
		return fmt.Sprintf("[%s] %s: %s", w.Severity, w.Code, w.Message)
	}
	return fmt.Sprintf("[%s] %s (%s): %s", w.Severity, w.Code, strings.Join(loc, " "), w.Message)
}
