package helpers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   HTTPStatusText(statusCode),
		Message: customMessage,
	})
}

// RespondWithValidationError maps a binding failure to a 400 with per-field
// detail when the underlying error carries it.
func RespondWithValidationError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		fields[fieldError.Field()] = fieldMessage(fieldError)
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   HTTPStatusText(http.StatusBadRequest),
		Message: "Invalid input. Please check your fields.",
		Fields:  fields,
	})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Must be a valid email address."
	case "min":
		return "Too short (minimum " + fe.Param() + " characters)."
	case "oneof":
		return "Must be one of: " + fe.Param() + "."
	default:
		return "Invalid value."
	}
}
