package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxRequestBodySize bounds the JSON bodies accepted by the vault API. A
// credential collection entry or a gateway message is far below it.
const MaxRequestBodySize = 1 << 20

// ErrEmptyBody is returned by DecodeJSON when the request carries no body.
var ErrEmptyBody = errors.New("request body is empty")

// WriteJSON marshals data and writes it with the given status code and an
// "application/json" content type. It returns the number of body bytes
// written.
//
// If data cannot be marshaled, WriteJSON answers 500 with a plain-text body
// and returns the wrapped marshal error.
//
//	utils.WriteJSON(w, models.SuccessResponse(), http.StatusOK)
//	utils.WriteJSON(w, models.FailureResponse("Unknown action"), http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON reads at most MaxRequestBodySize bytes of r's body into v.
// Trailing data after the first JSON value is an error.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, MaxRequestBodySize))
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("decode request body: %w", err)
	}
	if decoder.More() {
		return fmt.Errorf("decode request body: unexpected data after JSON value")
	}
	return nil
}
