package model

import (
	"errors"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type SkillError struct {
	Code    string
	Message string
	Err     error
}

func (e *SkillError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *SkillError) Unwrap() error {
	return e.Err
}

func NewSkillNotFound(id string) *SkillError {
	return &SkillError{
		Code:    "SKILL_NOT_FOUND",
		Message: fmt.Sprintf("Skill with id %q not found", id),
	}
}

func NewSkillStoreError(err error) *SkillError {
	return &SkillError{
		Code:    "SKILL_STORE_ERROR",
		Message: "Skill storage operation failed",
		Err:     err,
	}
}

func IsSkillNotFound(err error) bool {
	var se *SkillError
	return errors.As(err, &se) && se.Code == "SKILL_NOT_FOUND"
}

func GetErrorResponse(err error) (int, string, string) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, verrs.Error(), "VALIDATION_ERROR"
	}

	var se *SkillError
	if errors.As(err, &se) {
		switch se.Code {
		case "SKILL_NOT_FOUND":
			return http.StatusNotFound, se.Message, se.Code
		default:
			return http.StatusInternalServerError, se.Message, se.Code
		}
	}

	return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
}
