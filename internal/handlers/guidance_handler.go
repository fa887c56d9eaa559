package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/reusehub/reuse-platform/internal/guidance"
	"github.com/reusehub/reuse-platform/internal/utils"
)

// DisposalQuery represents the request body for a disposal-guidance lookup.
type DisposalQuery struct {
	ItemName string `json:"item_name"`
	Category string `json:"category"`
}

// DisposalGuidanceHandler handles POST requests to /api/disposal-guidance.
// The lookup itself is a pure table read and cannot fail.
func DisposalGuidanceHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only POST is allowed")
		return
	}

	var query DisposalQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if query.ItemName == "" || query.Category == "" {
		utils.SendErrorResponse(w, http.StatusUnprocessableEntity, "item_name and category are required")
		return
	}

	result := guidance.Lookup(query.ItemName, query.Category)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Println(err)
	}
}
