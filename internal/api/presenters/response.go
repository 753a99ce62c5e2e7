package presenters

import (
	"errors"

	"Restaurant-Backend/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SuccessResponse writes the uniform success envelope. Payload fields are
// merged into the envelope alongside success and message.
func SuccessResponse(c *fiber.Ctx, payload fiber.Map, status int, message string) error {
	response := fiber.Map{
		"success": true,
		"message": message,
	}
	for key, value := range payload {
		response[key] = value
	}
	return c.Status(status).JSON(response)
}

// ErrorResponse writes the uniform error envelope. Validation failures carry a
// per-field message map; any other error detail is exposed only in development.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	response := fiber.Map{
		"success": false,
		"message": message,
	}

	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			response["errors"] = utils.TranslateValidationErrors(validationErrors)
		} else if utils.IsDevelopment() {
			response["error"] = err.Error()
		}
	}

	return c.Status(status).JSON(response)
}

// AppErrorHandler is the last-resort boundary: anything a handler did not map
// itself (including fiber's own 404/405 errors) is converted into the error
// envelope here.
func AppErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := domainMessage(status)

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = domainMessage(status)
	}

	if status >= fiber.StatusInternalServerError {
		return ErrorResponse(c, status, message, err)
	}
	return ErrorResponse(c, status, message, nil)
}

func domainMessage(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "resource not found"
	case fiber.StatusMethodNotAllowed:
		return "method not allowed"
	default:
		return "internal server error"
	}
}
