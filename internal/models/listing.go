package models

import "time"

type (
	ListingStatus string // Lifecycle state of a listing
	ListingType   string // How the item is offered
)

const (
	GiveAway ListingType = "give_away" // Item is offered for free
	Barter   ListingType = "barter"    // Owner wants something in exchange

	StatusAvailable ListingStatus = "available" // Visible in listing queries
	StatusClaimed   ListingStatus = "claimed"   // Someone has claimed the item
	StatusCompleted ListingStatus = "completed" // Item has been rehomed
)

// Listing represents a single item offered for giveaway or barter.
type Listing struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Category      string        `json:"category"`
	Condition     string        `json:"condition"`
	ContactInfo   string        `json:"contact_info"`
	ContactMethod string        `json:"contact_method"`
	ImageURL      string        `json:"image_url,omitempty"`
	ItemType      ListingType   `json:"item_type"`
	BarterWants   string        `json:"barter_wants,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	Status        ListingStatus `json:"status"`
}

// ListingRequest represents the request body for creating a listing.
type ListingRequest struct {
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Category      string      `json:"category"`
	Condition     string      `json:"condition"`
	ContactInfo   string      `json:"contact_info"`
	ContactMethod string      `json:"contact_method"`
	ImageURL      string      `json:"image_url,omitempty"`
	ItemType      ListingType `json:"item_type"`
	BarterWants   string      `json:"barter_wants,omitempty"`
}

// ListingFilter holds the optional predicates for listing queries.
// Listing queries are always restricted to available listings; the
// repository composes the remaining predicates with AND.
type ListingFilter struct {
	Categories []string
	ItemType   string
	Search     string
}

// Stats represents the aggregate counters for the platform.
// WasteDivertedKg is a fixed per-item estimate, not a measurement.
type Stats struct {
	TotalListings   int64   `json:"total_listings"`
	AvailableItems  int64   `json:"available_items"`
	ItemsRehomed    int64   `json:"items_rehomed"`
	WasteDivertedKg float64 `json:"waste_diverted_kg"`
}
