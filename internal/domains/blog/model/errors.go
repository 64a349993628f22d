package model

import (
	"errors"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BlogError is the domain error for blog operations.
type BlogError struct {
	Code    string
	Message string
	Err     error
}

func (e *BlogError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *BlogError) Unwrap() error {
	return e.Err
}

func NewBlogNotFound(id string) *BlogError {
	return &BlogError{
		Code:    "BLOG_NOT_FOUND",
		Message: fmt.Sprintf("Blog post with id %q not found", id),
	}
}

func NewBlogNotFoundBySlug(slug string) *BlogError {
	return &BlogError{
		Code:    "BLOG_NOT_FOUND",
		Message: fmt.Sprintf("Blog post with slug %q not found", slug),
	}
}

func NewSlugAlreadyExists(slug string) *BlogError {
	return &BlogError{
		Code:    "BLOG_SLUG_EXISTS",
		Message: fmt.Sprintf("Blog post with slug %q already exists", slug),
	}
}

func NewBlogStoreError(err error) *BlogError {
	return &BlogError{
		Code:    "BLOG_STORE_ERROR",
		Message: "Blog storage operation failed",
		Err:     err,
	}
}

func IsBlogNotFound(err error) bool {
	var be *BlogError
	return errors.As(err, &be) && be.Code == "BLOG_NOT_FOUND"
}

// GetErrorResponse maps a service error to (status, message, code).
func GetErrorResponse(err error) (int, string, string) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, verrs.Error(), "VALIDATION_ERROR"
	}

	var be *BlogError
	if errors.As(err, &be) {
		switch be.Code {
		case "BLOG_NOT_FOUND":
			return http.StatusNotFound, be.Message, be.Code
		case "BLOG_SLUG_EXISTS":
			return http.StatusConflict, be.Message, be.Code
		default:
			return http.StatusInternalServerError, be.Message, be.Code
		}
	}

	return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
}
