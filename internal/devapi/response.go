package devapi

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeDetail writes a {"detail": msg} error.
func writeDetail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

type fieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// writeMissing answers 422 for absent required body fields.
func writeMissing(w http.ResponseWriter, fields ...string) {
	errs := make([]fieldError, 0, len(fields))
	for _, f := range fields {
		errs = append(errs, fieldError{Loc: []string{"body", f}, Msg: "field required", Type: "value_error.missing"})
	}
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": errs})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}
