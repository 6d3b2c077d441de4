package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Error codes carried in ErrorDetails.Code
const (
	CodeDivisionByZero = "DIVISION_BY_ZERO"
	CodeInvalidInput   = "INVALID_INPUT"
)

// ErrorDetails describes why an operation failed
type ErrorDetails struct {
	Code    string             `json:"code"`              // Stable machine-readable identifier
	Message string             `json:"message"`           // Human-readable message
	Details map[string]float64 `json:"details,omitempty"` // Numeric values that caused the failure
}

// Error implements the error interface so failures can be passed along as errors
func (e *ErrorDetails) Error() string {
	return e.Code + ": " + e.Message
}

// Outcome is the tagged result of an operation: either Success carrying data,
// or Failure carrying ErrorDetails. Build one with Success or Failure.
type Outcome struct {
	data float64
	err  *ErrorDetails
}

// Success returns a successful outcome carrying data
func Success(data float64) Outcome {
	return Outcome{data: data}
}

// Failure returns a failed outcome carrying a copy of details
func Failure(details ErrorDetails) Outcome {
	if details.Details != nil {
		copied := make(map[string]float64, len(details.Details))
		for k, v := range details.Details {
			copied[k] = v
		}
		details.Details = copied
	}
	return Outcome{err: &details}
}

// OK reports whether the outcome is a Success
func (o Outcome) OK() bool {
	return o.err == nil
}

// Data returns the success value. The second result is false for a Failure.
func (o Outcome) Data() (float64, bool) {
	if o.err != nil {
		return 0, false
	}
	return o.data, true
}

// Err returns the failure details, or nil for a Success
func (o Outcome) Err() *ErrorDetails {
	return o.err
}

// String renders the outcome for display using the shortest float representation
func (o Outcome) String() string {
	return o.Format(-1)
}

// Format renders the outcome for display, rounding numbers to precision
// decimal places. A negative precision keeps the shortest representation.
func (o Outcome) Format(precision int) string {
	if o.err == nil {
		return "success: " + formatFloat(o.data, precision)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "failure: %s: %s", o.err.Code, o.err.Message)
	if len(o.err.Details) > 0 {
		keys := make([]string, 0, len(o.err.Details))
		for k := range o.err.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + "=" + formatFloat(o.err.Details[k], precision)
		}
		b.WriteString(" (" + strings.Join(parts, ", ") + ")")
	}
	return b.String()
}

func formatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// outcomeJSON is the wire shape of an Outcome
type outcomeJSON struct {
	Success bool          `json:"success"`
	Data    *float64      `json:"data,omitempty"`
	Error   *ErrorDetails `json:"error,omitempty"`
}

// MarshalJSON encodes the outcome as {"success":true,"data":..} or
// {"success":false,"error":{..}}
func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.err != nil {
		return json.Marshal(outcomeJSON{Success: false, Error: o.err})
	}
	data := o.data
	return json.Marshal(outcomeJSON{Success: true, Data: &data})
}

// UnmarshalJSON decodes the wire shape produced by MarshalJSON
func (o *Outcome) UnmarshalJSON(b []byte) error {
	var raw struct {
		Success *bool           `json:"success"`
		Data    *float64        `json:"data"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Success == nil {
		return fmt.Errorf("outcome: missing success flag")
	}

	hasError := len(raw.Error) > 0 && !bytes.Equal(raw.Error, []byte("null"))

	if *raw.Success {
		if raw.Data == nil || hasError {
			return fmt.Errorf("outcome: success must carry data and no error")
		}
		*o = Success(*raw.Data)
		return nil
	}

	if raw.Data != nil || !hasError {
		return fmt.Errorf("outcome: failure must carry an error and no data")
	}
	var details ErrorDetails
	if err := json.Unmarshal(raw.Error, &details); err != nil {
		return fmt.Errorf("outcome: invalid error details: %w", err)
	}
	if details.Code == "" || details.Message == "" {
		return fmt.Errorf("outcome: error details require code and message")
	}
	*o = Failure(details)
	return nil
}
