package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a single validation failure with field context.
type ValidationError struct {
	Field   string
	Message string
}

func (ve ValidationError) Error() string {
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors collects every failure found in one pass over a
// FileConfig, rather than stopping at the first (§7: configuration errors
// are reported, not panicked on).
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}
	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("%d validation errors: %s", len(ve), strings.Join(messages, "; "))
}

func (ve ValidationErrors) HasErrors() bool { return len(ve) > 0 }

func (ve *ValidationErrors) add(field, message string) {
	*ve = append(*ve, ValidationError{Field: field, Message: message})
}

var validReportFormats = []string{"table", "csv", "template", ""}

// Validate checks a FileConfig for internally-inconsistent values that
// yaml.Unmarshal itself cannot catch.
func Validate(fc FileConfig) error {
	var errs ValidationErrors

	if fc.NumThreads < 0 {
		errs.add("num_threads", "must not be negative")
	}

	if !contains(validReportFormats, fc.ReportFormat) {
		errs.add("report_format", fmt.Sprintf("must be one of table, csv, template (got %q)", fc.ReportFormat))
	}

	for alias, addr := range fc.NamedAddresses {
		if strings.TrimSpace(addr) == "" {
			errs.add("named_addresses."+alias, "must not be empty")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
