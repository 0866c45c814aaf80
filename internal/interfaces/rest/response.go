package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bigspay/pg-backoffice/internal/domain"
	"github.com/go-playground/validator"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func RespondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success: status >= 200 && status < 300,
	}

	if response.Success {
		response.Data = data
	} else {
		if apiErr, ok := data.(*APIError); ok {
			response.Error = apiErr
		}
	}

	_ = json.NewEncoder(w).Encode(response)
}

// RespondWithError translates domain and storage errors into the API
// envelope. Anything unrecognized is a 500: storage failures reach this
// point unchanged and are not masked as client errors.
func RespondWithError(w http.ResponseWriter, err error) {
	code := "INTERNAL_ERROR"
	message := err.Error()
	status := http.StatusInternalServerError

	var domainErr *domain.DomainError
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		code = "INVALID_INPUT"
		status = http.StatusBadRequest

	case errors.As(err, &domainErr):
		code = domainErr.Code
		message = domainErr.Message

		switch domainErr.Code {
		case domain.ErrCodeInvalidAmount:
			status = http.StatusBadRequest
		case domain.ErrCodePaymentNotFound:
			status = http.StatusNotFound
		case domain.ErrCodeNoFeePolicy:
			status = http.StatusUnprocessableEntity
		default:
			status = http.StatusBadRequest
		}
	}

	RespondWithJSON(w, status, &APIError{
		Code:    code,
		Message: message,
	})
}
