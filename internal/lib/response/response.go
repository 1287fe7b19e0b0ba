package response

import (
	"encoding/json"
	"net/http"

	"songcatalog/internal/lib/apperr"
)

// ErrorBody is the uniform body of every non-2xx response.
type ErrorBody struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	StackTrace string `json:"stackTrace,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
		return
	}
}

// Error translates err into the error body. The stack trace is only
// included when withStack is set (development mode).
func Error(w http.ResponseWriter, err error, withStack bool) {
	appErr := apperr.From(err)
	body := ErrorBody{
		Title:   apperr.Title(appErr.Status),
		Message: appErr.Message,
	}
	if withStack {
		body.StackTrace = appErr.StackTrace()
	}
	JSON(w, appErr.Status, body)
}
