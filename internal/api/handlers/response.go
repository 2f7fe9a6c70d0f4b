package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/moodbrew/moodbrew-backend/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithServiceError maps typed service errors to HTTP statuses. The
// raw error text is only exposed for client-caused failures.
func respondWithServiceError(w http.ResponseWriter, err error, fallbackMessage string) {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeNotFound:
		respondWithError(w, http.StatusNotFound, err.Error())
	case apperrors.ErrorTypeValidation:
		respondWithError(w, http.StatusBadRequest, err.Error())
	case apperrors.ErrorTypeConflict:
		respondWithError(w, http.StatusConflict, err.Error())
	case apperrors.ErrorTypeUnauthorized:
		respondWithError(w, http.StatusUnauthorized, err.Error())
	case apperrors.ErrorTypeExternal:
		respondWithError(w, http.StatusBadGateway, fallbackMessage)
	default:
		respondWithError(w, http.StatusInternalServerError, fallbackMessage)
	}
}
