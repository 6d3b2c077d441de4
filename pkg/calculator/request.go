package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when an operand cannot be turned into a number
var ErrInvalidInput = errors.New("invalid input")

// InputError reports which operand was rejected and why
type InputError struct {
	Field  string // "dividend" or "divisor"
	Value  string // Offending value as received
	Reason string
}

func (e *InputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidInput
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// ParseDivisionRequest builds a request from textual operands.
// Values that are not numbers, or are NaN or infinite, are rejected.
func ParseDivisionRequest(dividend, divisor string) (DivisionRequest, error) {
	d, err := parseOperand("dividend", dividend)
	if err != nil {
		return DivisionRequest{}, err
	}
	v, err := parseOperand("divisor", divisor)
	if err != nil {
		return DivisionRequest{}, err
	}
	return NewDivisionRequest(d, v), nil
}

// RequestFromArguments builds a request from decoded JSON arguments holding
// "dividend" and "divisor" keys.
func RequestFromArguments(args map[string]interface{}) (DivisionRequest, error) {
	d, err := argumentOperand(args, "dividend")
	if err != nil {
		return DivisionRequest{}, err
	}
	v, err := argumentOperand(args, "divisor")
	if err != nil {
		return DivisionRequest{}, err
	}
	return NewDivisionRequest(d, v), nil
}

func argumentOperand(args map[string]interface{}, field string) (float64, error) {
	raw, ok := args[field]
	if !ok || raw == nil {
		return 0, &InputError{Field: field, Reason: "missing"}
	}

	switch v := raw.(type) {
	case float64:
		return checkFinite(field, strconv.FormatFloat(v, 'g', -1, 64), v)
	case float32:
		return checkFinite(field, strconv.FormatFloat(float64(v), 'g', -1, 32), float64(v))
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return parseOperand(field, v.String())
	case string:
		return parseOperand(field, v)
	default:
		return 0, &InputError{Field: field, Value: fmt.Sprintf("%v", raw), Reason: fmt.Sprintf("unsupported type %T", raw)}
	}
}

func parseOperand(field, s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, &InputError{Field: field, Value: s, Reason: "empty"}
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &InputError{Field: field, Value: s, Reason: "not a number"}
	}
	return checkFinite(field, s, v)
}

func checkFinite(field, s string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InputError{Field: field, Value: s, Reason: "not a finite number"}
	}
	return v, nil
}
