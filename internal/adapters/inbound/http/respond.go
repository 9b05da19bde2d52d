package http

import (
	"encoding/json"
	"net/http"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/adapters/inbound/http/gen"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err gen.ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case gen.BADREQUEST:
		statusCode = http.StatusBadRequest
	}
	respondJSON(w, statusCode, err)
}

func badRequest(message string) gen.ErrorResp {
	return gen.ErrorResp{Error: gen.Error{Code: gen.BADREQUEST, Message: message}}
}

// paramErrorHandler answers parameter binding failures with the JSON error body.
func paramErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	respondError(w, badRequest(err.Error()))
}
