package router

import (
	"net/http"

	"github.com/reusehub/reuse-platform/internal/handlers"
)

func InitRoutes(listingHandler *handlers.ListingHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/{$}", handlers.RootHandler)

	mux.HandleFunc("GET /api/items", listingHandler.GetItems)
	mux.HandleFunc("POST /api/items", listingHandler.CreateItem)
	mux.HandleFunc("/api/items/{itemId}", listingHandler.GetItem)
	mux.HandleFunc("PUT /api/items/{itemId}/status", listingHandler.UpdateItemStatus)

	mux.HandleFunc("/api/disposal-guidance", handlers.DisposalGuidanceHandler)
	mux.HandleFunc("/api/stats", listingHandler.GetStats)

	return mux
}
