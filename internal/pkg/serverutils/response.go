package serverutils

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"skillswap-be/internal/apperr"
)

type Response[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Message: message,
		Data:    data,
	}
}

// ErrorResponse renders the error envelope used everywhere: a short machine
// readable tag, a human message and the HTTP status echoed in the body.
func ErrorResponse(status int, message string) map[string]interface{} {
	return map[string]interface{}{
		"error":   http.StatusText(status),
		"message": message,
		"status":  status,
	}
}

var validate = validator.New()

func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return apperr.Validation(err.Error())
	}
	return nil
}
