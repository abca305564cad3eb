// Package businessflow contains the core business logic and use cases for rating and policy workflows
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Customer and insured asset errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrHomeNotFound     = errors.New("home not found")

	// Quote-related errors
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrQuoteAlreadyInactive  = errors.New("quote is no longer active")
	ErrLiabilityLimitInvalid = errors.New("liability limit must be one of the supported limits")

	// Policy-related errors
	ErrPolicyNotFound       = errors.New("policy not found")
	ErrEffectiveDateInvalid = errors.New("effective date must be a valid YYYY-MM-DD date")

	// Risk factor errors
	ErrRiskFactorsInvalid     = errors.New("risk factor table is incomplete or invalid")
	ErrRiskFactorsUnavailable = errors.New("risk factor table is unavailable")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

func IsCustomerNotFound(err error) bool {
	return errors.Is(err, ErrCustomerNotFound)
}

func IsVehicleNotFound(err error) bool {
	return errors.Is(err, ErrVehicleNotFound)
}

func IsHomeNotFound(err error) bool {
	return errors.Is(err, ErrHomeNotFound)
}

func IsQuoteNotFound(err error) bool {
	return errors.Is(err, ErrQuoteNotFound)
}

func IsQuoteAlreadyInactive(err error) bool {
	return errors.Is(err, ErrQuoteAlreadyInactive)
}

func IsLiabilityLimitInvalid(err error) bool {
	return errors.Is(err, ErrLiabilityLimitInvalid)
}

func IsPolicyNotFound(err error) bool {
	return errors.Is(err, ErrPolicyNotFound)
}

func IsEffectiveDateInvalid(err error) bool {
	return errors.Is(err, ErrEffectiveDateInvalid)
}

func IsRiskFactorsInvalid(err error) bool {
	return errors.Is(err, ErrRiskFactorsInvalid)
}

func IsRiskFactorsUnavailable(err error) bool {
	return errors.Is(err, ErrRiskFactorsUnavailable)
}
