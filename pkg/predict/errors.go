package predict

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RequestError is a non-success response reported by the prediction service.
// Message carries the most specific description the response body yielded.
type RequestError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("predict: status %d: %s", e.Status, e.Message)
}

// errorBody matches the two error shapes the service emits: a single error
// string or a list of error strings.
type errorBody struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors"`
}

// extractErrorMessage pulls the best available message out of an error
// response body. Malformed bodies are tolerated silently: the fallback is a
// generic message embedding the status code.
func extractErrorMessage(body []byte, status int) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Error != "" {
			return parsed.Error
		}
		if len(parsed.Errors) > 0 {
			return strings.Join(parsed.Errors, "; ")
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}
