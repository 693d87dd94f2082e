package classify

import (
	"fmt"
	"strconv"
	"strings"
)

// Typical engineering ranges for the numeric specifications. Values outside
// warn without blocking: unusual cylinders exist, typos are more common.
const (
	minBore   = 10
	maxBore   = 500
	minStroke = 10
	maxStroke = 10000
)

// ValidationResult is the outcome of a specification check. Errors block
// the record; warnings are informational and never block classification or
// suggestion generation downstream.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidateSpecs checks a specification map for completeness and plausibility.
// Bore, stroke and series are required; a present but non-numeric bore or
// stroke is an error; out-of-range numerics and unknown enumeration values
// only warn. Valid is true exactly when Errors is empty.
func (e *Engine) ValidateSpecs(specs map[string]string) ValidationResult {
	result := ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}

	bore, boreOK := e.validateNumeric(&result, specs, SpecBore)
	stroke, strokeOK := e.validateNumeric(&result, specs, SpecStroke)

	if boreOK && (bore < minBore || bore > maxBore) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Bore %d outside typical range [%d,%d]", bore, minBore, maxBore))
		e.recordWarning(SpecBore)
	}
	if strokeOK && (stroke < minStroke || stroke > maxStroke) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Stroke %d outside typical range [%d,%d]", stroke, minStroke, maxStroke))
		e.recordWarning(SpecStroke)
	}

	series := strings.TrimSpace(specs[SpecSeries])
	if series == "" {
		result.Errors = append(result.Errors, "Missing required field: series")
	} else if _, known := classifyValue(seriesRules, series); !known {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Unknown series: %s (expected 10, 11, 12 or 13)", series))
		e.recordWarning(SpecSeries)
	}

	if rodEnd := strings.TrimSpace(specs[SpecRodEndType]); rodEnd != "" {
		if _, known := classifyValue(rodEndRules, rodEnd); !known {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Unknown rod end type: %s (expected Y, I, E or P)", rodEnd))
			e.recordWarning(SpecRodEndType)
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// validateNumeric applies the required-and-numeric rules for bore or stroke.
// Returns the parsed value and whether range checks should run.
func (e *Engine) validateNumeric(result *ValidationResult, specs map[string]string, key string) (int, bool) {
	raw, present := specs[key]
	raw = strings.TrimSpace(raw)
	if !present || raw == "" {
		result.Errors = append(result.Errors, "Missing required field: "+key)
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Non-numeric %s: %s", key, raw))
		return 0, false
	}
	return value, true
}

func (e *Engine) recordWarning(field string) {
	if e.metrics != nil {
		e.metrics.RecordValidationWarning(field)
	}
}
