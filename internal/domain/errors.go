package domain

import "errors"

// Domain errors
var (
	ErrNotFound                = errors.New("resource not found")
	ErrInvalidInput            = errors.New("invalid input")
	ErrInternalError           = errors.New("internal error")
	ErrHolderNotFound          = errors.New("holder not found")
	ErrSavingNotFound          = errors.New("saving not found")
	ErrBudgetElementNotFound   = errors.New("budget element not found")
	ErrLabelRequired           = errors.New("label is required")
	ErrLabelTooLong            = errors.New("label exceeds maximum length")
	ErrNameRequired            = errors.New("first and last name are required")
	ErrHolderRequired          = errors.New("holder reference is required")
	ErrInvalidElementType      = errors.New("invalid budget element type")
	ErrNegativeMonthlyValue    = errors.New("monthly value must not be negative")
	ErrAmountNotPositive       = errors.New("operation amount must be positive")
	ErrInvalidOperationType    = errors.New("invalid operation type")
	ErrBudgetElementRequired   = errors.New("monthly operations require a budget element reference")
	ErrBudgetElementNotAllowed = errors.New("budget element reference is only valid for monthly operations")
	ErrNotMonthlyElement       = errors.New("budget element is not of monthly type")
	ErrSavingNotLinked         = errors.New("budget element is not linked to a saving")
	ErrMissingCode             = errors.New("authorization code is missing")
	ErrMissingToken            = errors.New("access token missing from provider response")
	ErrSessionNotFound         = errors.New("bank session not found or expired")
)

// Validation constants
const (
	MaxLabelLength = 255
)
