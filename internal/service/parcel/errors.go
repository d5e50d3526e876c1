package parcel

import (
	"errors"
	"strings"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid package status transition")

	ErrPackageNotFound  = errors.New("package not found")
	ErrAlreadyCheckedIn = errors.New("package already checked in")
	ErrStore            = errors.New("package store failure")
)

// InvalidInputError перечисляет все поля запроса, не прошедшие проверку.
type InvalidInputError struct {
	Fields []string
}

func NewInvalidInputError(fields ...string) *InvalidInputError {
	return &InvalidInputError{Fields: fields}
}

func (e *InvalidInputError) Error() string {
	return ErrInvalidInput.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}
