package utils

import (
	"encoding/json"
	"net/http"

	"marketplace-api/pkg/apperror"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

var kindStatus = map[apperror.Kind]int{
	apperror.KindAuthentication: http.StatusUnauthorized,
	apperror.KindPermission:     http.StatusForbidden,
	apperror.KindNotFound:       http.StatusNotFound,
	apperror.KindInvalid:        http.StatusBadRequest,
	apperror.KindConflict:       http.StatusConflict,
	apperror.KindInternal:       http.StatusInternalServerError,
}

// StatusOf is the HTTP status for err's kind; errors without a kind are 500.
func StatusOf(err error) int {
	if code, ok := kindStatus[apperror.KindOf(err)]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// ResponseJSON writes the {status, message, data, errors} envelope.
func ResponseJSON(w http.ResponseWriter, code int, status bool, message string, data, errors any) {
	response := Response{
		Status:  status,
		Message: message,
		Data:    data,
		Errors:  errors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusOK, true, message, data, nil)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusCreated, true, message, data, nil)
}

// returns 204 No Content with an empty body
func ResponseNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ResponseBadRequest carries per-field validation errors, which have no apperror form.
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseJSON(w, http.StatusBadRequest, false, message, nil, errors)
}

// ResponseError writes the failure envelope for err. Internal messages never
// reach the client.
func ResponseError(w http.ResponseWriter, err error) {
	code := StatusOf(err)
	message := apperror.MessageOf(err)
	if code == http.StatusInternalServerError {
		message = "Internal server error"
	}

	ResponseJSON(w, code, false, message, nil, nil)
}
