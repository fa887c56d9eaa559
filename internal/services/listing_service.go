package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/reusehub/reuse-platform/internal/models"
	"github.com/reusehub/reuse-platform/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// wastePerItemKg is the estimated average weight of a rehomed item. An
// approximation, not a measurement.
const wastePerItemKg = 2.5

type ListingService struct {
	Repo repository.ListingRepository
}

// NewListingService creates a new ListingService.
func NewListingService(repo repository.ListingRepository) *ListingService {
	return &ListingService{Repo: repo}
}

// CreateListing validates the request, assigns the id, timestamp and initial
// status, and persists the listing. Duplicate titles and descriptions are
// permitted.
func (s *ListingService) CreateListing(ctx context.Context, listingReq models.ListingRequest) (*models.Listing, error) {
	if listingReq.Title == "" || listingReq.Description == "" || listingReq.Category == "" ||
		listingReq.Condition == "" || listingReq.ContactInfo == "" || listingReq.ContactMethod == "" {
		return nil, models.NewErrorResponse(http.StatusUnprocessableEntity, "missing required fields")
	}

	if listingReq.ItemType != models.GiveAway && listingReq.ItemType != models.Barter {
		return nil, models.NewErrorResponse(http.StatusUnprocessableEntity, "invalid item type. Must be 'give_away' or 'barter'")
	}

	newListing := models.Listing{
		ID:            uuid.New().String(),
		Title:         listingReq.Title,
		Description:   listingReq.Description,
		Category:      listingReq.Category,
		Condition:     listingReq.Condition,
		ContactInfo:   listingReq.ContactInfo,
		ContactMethod: listingReq.ContactMethod,
		ImageURL:      listingReq.ImageURL,
		ItemType:      listingReq.ItemType,
		BarterWants:   listingReq.BarterWants,
		Status:        models.StatusAvailable,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.Repo.CreateListing(ctx, newListing); err != nil {
		return nil, err
	}
	return &newListing, nil
}

// FetchListings returns the available listings matching the optional
// filters, newest first. An empty result is not an error.
func (s *ListingService) FetchListings(ctx context.Context, categories []string, itemType, search string) ([]models.Listing, error) {
	filter := models.ListingFilter{
		Categories: categories,
		ItemType:   itemType,
		Search:     search,
	}

	listings, err := s.Repo.GetListings(ctx, filter)
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	return listings, nil
}

// GetListing returns a listing by id regardless of its status.
func (s *ListingService) GetListing(ctx context.Context, listingID string) (*models.Listing, error) {
	listing, err := s.Repo.GetListingByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewErrorResponse(http.StatusNotFound, "item not found")
		}
		return nil, err
	}
	return listing, nil
}

// UpdateListingStatus changes the status of a listing. Any of the three
// recognized statuses may be set at any time; this is the only mutation
// path in the system.
func (s *ListingService) UpdateListingStatus(ctx context.Context, listingID, status string) error {
	allowedStatuses := map[models.ListingStatus]bool{
		models.StatusAvailable: true,
		models.StatusClaimed:   true,
		models.StatusCompleted: true,
	}
	if !allowedStatuses[models.ListingStatus(status)] {
		return models.NewErrorResponse(http.StatusBadRequest, "invalid status")
	}

	matched, err := s.Repo.UpdateListingStatus(ctx, listingID, status)
	if err != nil {
		return err
	}
	if !matched {
		return models.NewErrorResponse(http.StatusNotFound, "item not found")
	}
	return nil
}

// GetStats computes the aggregate platform counters.
func (s *ListingService) GetStats(ctx context.Context) (*models.Stats, error) {
	total, err := s.Repo.CountListings(ctx, "")
	if err != nil {
		return nil, err
	}
	available, err := s.Repo.CountListings(ctx, models.StatusAvailable)
	if err != nil {
		return nil, err
	}
	completed, err := s.Repo.CountListings(ctx, models.StatusCompleted)
	if err != nil {
		return nil, err
	}

	return &models.Stats{
		TotalListings:   total,
		AvailableItems:  available,
		ItemsRehomed:    completed,
		WasteDivertedKg: float64(completed) * wastePerItemKg,
	}, nil
}
