package serverutils

import "github.com/gofiber/fiber/v2"

// AppError is raised from services and converted into the HTTP error body
// {"detail": message} by the error handler.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(fiber.StatusNotFound, message)
}

func NewBadRequestError(message string) *AppError {
	return NewAppError(fiber.StatusBadRequest, message)
}

func NewUnauthorizedError(message string) *AppError {
	return NewAppError(fiber.StatusUnauthorized, message)
}

func NewBadGatewayError(message string) *AppError {
	return NewAppError(fiber.StatusBadGateway, message)
}

func NewInternalError(message string) *AppError {
	return NewAppError(fiber.StatusInternalServerError, message)
}
