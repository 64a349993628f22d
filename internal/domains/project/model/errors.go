package model

import (
	"errors"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ProjectError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProjectError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ProjectError) Unwrap() error {
	return e.Err
}

func NewProjectNotFound(id string) *ProjectError {
	return &ProjectError{
		Code:    "PROJECT_NOT_FOUND",
		Message: fmt.Sprintf("Project with id %q not found", id),
	}
}

func NewProjectStoreError(err error) *ProjectError {
	return &ProjectError{
		Code:    "PROJECT_STORE_ERROR",
		Message: "Project storage operation failed",
		Err:     err,
	}
}

func IsProjectNotFound(err error) bool {
	var pe *ProjectError
	return errors.As(err, &pe) && pe.Code == "PROJECT_NOT_FOUND"
}

func GetErrorResponse(err error) (int, string, string) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, verrs.Error(), "VALIDATION_ERROR"
	}

	var pe *ProjectError
	if errors.As(err, &pe) {
		switch pe.Code {
		case "PROJECT_NOT_FOUND":
			return http.StatusNotFound, pe.Message, pe.Code
		default:
			return http.StatusInternalServerError, pe.Message, pe.Code
		}
	}

	return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
}
