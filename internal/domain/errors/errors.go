package errors

import (
	"net/http"

	"habitar/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are pt-PT, matching the
// marketplace frontend.
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Utilizador não encontrado",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Já existe uma conta com este email. Inicie sessão em vez disso.",
		"",
	)

	ErrUserSyncFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_SYNC_FAILED",
		"Erro ao criar o perfil de utilizador",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email ou palavra-passe inválidos",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_NOT_FOUND",
		"Não existe nenhuma conta com este email",
		"",
	)

	ErrAccountDisabled = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_DISABLED",
		"A sua conta pode estar desativada ou bloqueada",
		"",
	)

	ErrAccountSuspended = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_SUSPENDED",
		"A sua conta foi suspensa. Contacte o suporte.",
		"",
	)

	ErrAccountBanned = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_BANNED",
		"A sua conta foi banida. Contacte o suporte.",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Introduza um endereço de email válido",
		"",
	)

	ErrWeakPassword = NewBaseError(
		http.StatusBadRequest,
		"WEAK_PASSWORD",
		"A palavra-passe é demasiado fraca. Use uma palavra-passe mais forte.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados de entrada inválidos",
		"",
	)

	// Infrastructure errors
	ErrConnectivity = NewBaseError(
		http.StatusServiceUnavailable,
		"CONNECTIVITY",
		"Erro de ligação à rede. Verifique a sua ligação à internet e tente novamente.",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acesso negado",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Ocorreu um erro inesperado. Tente novamente.",
		"",
	)
)
