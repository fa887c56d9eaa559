package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/reusehub/reuse-platform/internal/models"
	"github.com/reusehub/reuse-platform/internal/services"
	"github.com/reusehub/reuse-platform/internal/utils"
)

// ListingHandler handles the HTTP requests for listings.
type ListingHandler struct {
	Service *services.ListingService
	Logger  *log.Logger
	Timeout time.Duration
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(service *services.ListingService, logger *log.Logger, timeout time.Duration) *ListingHandler {
	return &ListingHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
	}
}

// GetItems handles requests for the filtered list of available listings.
func (h *ListingHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	categories := r.URL.Query()["category"]
	itemType := r.URL.Query().Get("item_type")
	search := r.URL.Query().Get("search")

	listings, err := h.Service.FetchListings(ctx, categories, itemType, search)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Println(err)
			utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
			return
		}
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "error fetching items")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(listings); err != nil {
		h.Logger.Println(err)
	}
}

// CreateItem handles requests for creating a listing.
func (h *ListingHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var listingReq models.ListingRequest
	err := json.NewDecoder(r.Body).Decode(&listingReq)
	if err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	newListing, err := h.Service.CreateListing(ctx, listingReq)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Println(err)
			utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
			return
		}
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "error creating item")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(newListing); err != nil {
		h.Logger.Println(err)
	}
}

// GetItem handles requests for a single listing by id.
func (h *ListingHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	itemId := r.PathValue("itemId")

	listing, err := h.Service.GetListing(ctx, itemId)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Println(err)
			utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
			return
		}
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "error fetching item")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(listing); err != nil {
		h.Logger.Println(err)
	}
}

// UpdateItemStatus handles requests for changing the status of a listing.
func (h *ListingHandler) UpdateItemStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PUT is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	itemId := r.PathValue("itemId")
	status := r.URL.Query().Get("status")

	if err := h.Service.UpdateListingStatus(ctx, itemId, status); err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Println(err)
			utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
			return
		}
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "error updating item status")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "Status updated successfully"}); err != nil {
		h.Logger.Println(err)
	}
}

// GetStats handles requests for the aggregate platform counters.
func (h *ListingHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	stats, err := h.Service.GetStats(ctx)
	if err != nil {
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "error getting stats")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(stats); err != nil {
		h.Logger.Println(err)
	}
}
