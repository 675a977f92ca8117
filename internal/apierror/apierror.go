// Package apierror provides the error taxonomy and standardized response
// structures for the API. All errors returned to clients go through this
// package to ensure consistency and to prevent leaking internal details
// (stack traces, DB errors, etc.).
package apierror

import "net/http"

// Kind classifies an error into the taxonomy the handlers map to HTTP status.
type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindInternal
)

// CampoError is a single field-level validation failure.
type CampoError struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// Error is the canonical domain error. Services return it; handlers translate
// it into an HTTP status and JSON envelope without inspecting the message.
type Error struct {
	Kind    Kind
	Mensaje string
	Campos  []CampoError
}

func (e *Error) Error() string { return e.Mensaje }

// Status maps the error kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Response is the JSON envelope for all 4xx/5xx responses.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []CampoError `json:"errors,omitempty"`
}

func (e *Error) Response() Response {
	return Response{Success: false, Message: e.Mensaje, Errors: e.Campos}
}

func Validacion(campos []CampoError) *Error {
	return &Error{Kind: KindValidation, Mensaje: "Errores de validación", Campos: campos}
}

func Conflicto(msg string) *Error    { return &Error{Kind: KindConflict, Mensaje: msg} }
func NoAutorizado(msg string) *Error { return &Error{Kind: KindUnauthorized, Mensaje: msg} }
func Prohibido(msg string) *Error    { return &Error{Kind: KindForbidden, Mensaje: msg} }
func NoEncontrado(msg string) *Error { return &Error{Kind: KindNotFound, Mensaje: msg} }
func Interno(msg string) *Error      { return &Error{Kind: KindInternal, Mensaje: msg} }
