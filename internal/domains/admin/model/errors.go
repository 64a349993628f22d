package model

import (
	"errors"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type AdminError struct {
	Code    string
	Message string
	Err     error
}

func (e *AdminError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AdminError) Unwrap() error {
	return e.Err
}

// NewInvalidCredentials is returned for both unknown emails and wrong
// passwords so a caller cannot probe which accounts exist.
func NewInvalidCredentials() *AdminError {
	return &AdminError{
		Code:    "UNAUTHORIZED",
		Message: "Invalid email or password",
	}
}

func NewAdminStoreError(err error) *AdminError {
	return &AdminError{
		Code:    "ADMIN_STORE_ERROR",
		Message: "Admin storage operation failed",
		Err:     err,
	}
}

func IsInvalidCredentials(err error) bool {
	var ae *AdminError
	return errors.As(err, &ae) && ae.Code == "UNAUTHORIZED"
}

func GetErrorResponse(err error) (int, string, string) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, verrs.Error(), "VALIDATION_ERROR"
	}

	var ae *AdminError
	if errors.As(err, &ae) {
		switch ae.Code {
		case "UNAUTHORIZED":
			return http.StatusUnauthorized, ae.Message, ae.Code
		default:
			return http.StatusInternalServerError, ae.Message, ae.Code
		}
	}

	return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
}
