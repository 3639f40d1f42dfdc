package httpadapter

import (
    "encoding/json"
    "errors"
    "io"
    "net/http"

    "dealdesk/internal/ports"
    contractsvc "dealdesk/internal/services/contracts"
    govsvc "dealdesk/internal/services/governance"
    pipesvc "dealdesk/internal/services/pipeline"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    _ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
    Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
    writeJSON(w, status, errorResponse{Error: msg})
}

// renderError maps service errors onto status codes. Gate/config drift and
// missing rows are 404s; rejected input is a 400; anything else is a 500.
func renderError(w http.ResponseWriter, err error) {
    switch {
    case errors.Is(err, ports.ErrNotFound),
        errors.Is(err, govsvc.ErrGateNotFound),
        errors.Is(err, govsvc.ErrUnknownAutomation):
        writeError(w, http.StatusNotFound, err.Error())
    case errors.Is(err, govsvc.ErrReasonRequired),
        errors.Is(err, govsvc.ErrBadAutonomyLevel),
        errors.Is(err, pipesvc.ErrUnknownStatus),
        errors.Is(err, contractsvc.ErrBadDealType):
        writeError(w, http.StatusBadRequest, err.Error())
    default:
        writeError(w, http.StatusInternalServerError, err.Error())
    }
}

// decodeBody fills v from the request body. A missing body is not an error:
// v keeps its zero values and any field-level validation happens downstream,
// so endpoints whose fields are all optional accept a bare POST.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
    err := json.NewDecoder(r.Body).Decode(v)
    if err != nil && !errors.Is(err, io.EOF) {
        writeError(w, http.StatusBadRequest, "invalid request body")
        return false
    }
    return true
}
