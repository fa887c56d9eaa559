package utils

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/reusehub/reuse-platform/internal/models"
)

// SendErrorResponse sends an error as JSON with the given status code.
func SendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := models.ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
	}
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		log.Println(err)
	}
}
