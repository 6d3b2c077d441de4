// Package calculator provides the divide operation.
//
// Divide never panics and never returns a Go error: division by zero is
// reported as a Failure outcome carrying the operands that caused it.
package calculator

import (
	"github.com/sunfmin/mcp-go-divide/pkg/types"
)

// MessageDivisionByZero is the message of a DIVISION_BY_ZERO failure
const MessageDivisionByZero = "Cannot divide by zero"

// DivisionRequest is the pair of operands submitted to Divide
type DivisionRequest struct {
	dividend float64
	divisor  float64
}

// NewDivisionRequest builds a request from numeric operands
func NewDivisionRequest(dividend, divisor float64) DivisionRequest {
	return DivisionRequest{dividend: dividend, divisor: divisor}
}

// Dividend returns the number being divided
func (r DivisionRequest) Dividend() float64 {
	return r.dividend
}

// Divisor returns the number to divide by
func (r DivisionRequest) Divisor() float64 {
	return r.divisor
}

// Divide returns the quotient of the request's operands.
// If the divisor is exactly zero it returns a DIVISION_BY_ZERO failure.
func Divide(req DivisionRequest) types.Outcome {
	if req.divisor == 0 {
		return types.Failure(types.ErrorDetails{
			Code:    types.CodeDivisionByZero,
			Message: MessageDivisionByZero,
			Details: map[string]float64{
				"dividend": req.dividend,
				"divisor":  req.divisor,
			},
		})
	}
	return types.Success(req.dividend / req.divisor)
}

// DivideNumbers is Divide for callers holding plain operands
func DivideNumbers(dividend, divisor float64) types.Outcome {
	return Divide(NewDivisionRequest(dividend, divisor))
}
