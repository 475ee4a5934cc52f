package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"tasknest/shared/constant"
	"tasknest/shared/failure"
	"tasknest/shared/logger"

	"github.com/rs/zerolog/log"
)

// Body is the envelope of every JSON response. Data is omitted when empty.
type Body struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Message documents a message-only response.
type Message struct {
	Message string `json:"message"`
}

// Error documents an error response.
type Error struct {
	Message string `json:"message"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Body{Message: message})
}

// WithData sends a message together with a payload
func WithData(writer http.ResponseWriter, code int, message string, data any) {
	response(writer, code, Body{Message: message, Data: data})
}

// WithError sends a response with an error message. Errors that are not a Failure are
// logged and reported as a generic server error.
func WithError(writer http.ResponseWriter, err error) {
	var fail *failure.Failure
	if !errors.As(err, &fail) {
		log.Error().Err(err).Msg("unhandled error")

		response(writer, http.StatusInternalServerError, Error{Message: constant.ResponseErrorInternal})

		return
	}

	response(writer, fail.Code, Error{Message: fail.Message})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
