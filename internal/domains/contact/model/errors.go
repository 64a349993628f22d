package model

import (
	"errors"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ContactError struct {
	Code    string
	Message string
	Err     error
}

func (e *ContactError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ContactError) Unwrap() error {
	return e.Err
}

func NewContactNotFound(id string) *ContactError {
	return &ContactError{
		Code:    "CONTACT_NOT_FOUND",
		Message: fmt.Sprintf("Contact with id %q not found", id),
	}
}

func NewContactStoreError(err error) *ContactError {
	return &ContactError{
		Code:    "CONTACT_STORE_ERROR",
		Message: "Contact storage operation failed",
		Err:     err,
	}
}

func IsContactNotFound(err error) bool {
	var ce *ContactError
	return errors.As(err, &ce) && ce.Code == "CONTACT_NOT_FOUND"
}

func GetErrorResponse(err error) (int, string, string) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, verrs.Error(), "VALIDATION_ERROR"
	}

	var ce *ContactError
	if errors.As(err, &ce) {
		switch ce.Code {
		case "CONTACT_NOT_FOUND":
			return http.StatusNotFound, ce.Message, ce.Code
		default:
			return http.StatusInternalServerError, ce.Message, ce.Code
		}
	}

	return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
}
