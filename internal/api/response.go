// internal/api/response.go
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"pcblab/internal/apperrors"
)

// errorResponse is the JSON body of every failed request
type errorResponse struct {
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

// writeJSON encodes v with the given status
func writeJSON(w http.ResponseWriter, logger zerolog.Logger, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("Failed to encode response")
	}
}

// writeError maps err to a status code and writes it as JSON
func writeError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	writeErrorStatus(w, logger, apperrors.HTTPStatus(err), err)
}

func writeErrorStatus(w http.ResponseWriter, logger zerolog.Logger, status int, err error) {
	resp := errorResponse{Error: err.Error(), Retryable: apperrors.IsRetryable(err)}

	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		resp.Field = verr.Field
		resp.Reason = string(verr.Reason)
	}

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Int("status", status).Msg("Request failed")
	} else {
		logger.Debug().Err(err).Int("status", status).Msg("Request rejected")
	}
	writeJSON(w, logger, status, resp)
}

// decodeBody decodes the JSON request body into dst
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.NewValidationError("body", apperrors.ReasonInvalid, err.Error())
	}
	return nil
}
