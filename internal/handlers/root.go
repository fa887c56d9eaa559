package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/reusehub/reuse-platform/internal/utils"
)

// RootHandler handles GET requests to / with a liveness message.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	info := map[string]string{
		"message": "Household Reuse Platform API",
		"status":  "running",
	}
	if err := json.NewEncoder(w).Encode(info); err != nil {
		log.Println(err)
	}
}
