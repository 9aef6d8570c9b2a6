package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "apollo/pkg/domain-errors"
)

// errorResponse is the single-message error envelope: {"error": message}.
type errorResponse struct {
	Error string `json:"error"`
}

// validationResponse carries one message per offending field.
type validationResponse struct {
	Errors map[string]string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError translates domain errors to the wire contract exhaustively:
//
//	validation -> 422 {"errors": {field: message}}
//	not found  -> 400 {"error": message}
//	conflict   -> 400 {"error": message}
//	bad request-> 400 {"error": message}
//	anything else -> 500 with a generic message, internals never leak
//
// Not-found deliberately maps to 400 rather than 404: existing clients of
// this API depend on that status, so it is preserved for compatibility.
func writeError(w http.ResponseWriter, err error) {
	var de *dErrors.Error
	if !errors.As(err, &de) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}
	switch de.Code {
	case dErrors.CodeValidation:
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Errors: de.Fields})
	case dErrors.CodeNotFound, dErrors.CodeConflict, dErrors.CodeBadRequest:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: de.Message})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
