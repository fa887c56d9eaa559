package services

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/reusehub/reuse-platform/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryListingRepo is an in-memory ListingRepository with the same filter
// semantics as the Postgres implementation.
type memoryListingRepo struct {
	mu       sync.Mutex
	listings map[string]models.Listing
}

func newMemoryListingRepo() *memoryListingRepo {
	return &memoryListingRepo{listings: make(map[string]models.Listing)}
}

func (m *memoryListingRepo) CreateListing(ctx context.Context, listing models.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings[listing.ID] = listing
	return nil
}

func (m *memoryListingRepo) GetListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []models.Listing
	for _, listing := range m.listings {
		if listing.Status != models.StatusAvailable {
			continue
		}
		if len(filter.Categories) > 0 && !containsString(filter.Categories, listing.Category) {
			continue
		}
		if filter.ItemType != "" && string(listing.ItemType) != filter.ItemType {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(listing.Title), needle) &&
				!strings.Contains(strings.ToLower(listing.Description), needle) {
				continue
			}
		}
		result = append(result, listing)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *memoryListingRepo) GetListingByID(ctx context.Context, listingID string) (*models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	listing, ok := m.listings[listingID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &listing, nil
}

func (m *memoryListingRepo) UpdateListingStatus(ctx context.Context, listingID, status string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	listing, ok := m.listings[listingID]
	if !ok {
		return false, nil
	}
	listing.Status = models.ListingStatus(status)
	m.listings[listingID] = listing
	return true, nil
}

func (m *memoryListingRepo) CountListings(ctx context.Context, status models.ListingStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if status == "" {
		return int64(len(m.listings)), nil
	}
	var count int64
	for _, listing := range m.listings {
		if listing.Status == status {
			count++
		}
	}
	return count, nil
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func validRequest() models.ListingRequest {
	return models.ListingRequest{
		Title:         "Vintage Armchair",
		Description:   "Beautiful vintage armchair in good condition.",
		Category:      "Furniture",
		Condition:     "Good",
		ContactInfo:   "test@example.com",
		ContactMethod: "email",
		ItemType:      models.GiveAway,
	}
}

func TestCreateListingAssignsFields(t *testing.T) {
	repo := newMemoryListingRepo()
	svc := NewListingService(repo)
	before := time.Now().UTC()

	listing, err := svc.CreateListing(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, models.StatusAvailable, listing.Status)
	assert.False(t, listing.CreatedAt.Before(before), "created_at must not precede the call time")
	assert.Equal(t, "Vintage Armchair", listing.Title)

	stored, err := repo.GetListingByID(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, *listing, *stored)
}

func TestCreateListingGeneratesUniqueIDs(t *testing.T) {
	repo := newMemoryListingRepo()
	svc := NewListingService(repo)

	first, err := svc.CreateListing(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := svc.CreateListing(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateListingValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*models.ListingRequest)
	}{
		{"empty title", func(r *models.ListingRequest) { r.Title = "" }},
		{"empty description", func(r *models.ListingRequest) { r.Description = "" }},
		{"empty category", func(r *models.ListingRequest) { r.Category = "" }},
		{"empty condition", func(r *models.ListingRequest) { r.Condition = "" }},
		{"empty contact info", func(r *models.ListingRequest) { r.ContactInfo = "" }},
		{"empty contact method", func(r *models.ListingRequest) { r.ContactMethod = "" }},
		{"empty item type", func(r *models.ListingRequest) { r.ItemType = "" }},
		{"unknown item type", func(r *models.ListingRequest) { r.ItemType = "loan" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryListingRepo()
			svc := NewListingService(repo)

			req := validRequest()
			tt.modify(&req)

			_, err := svc.CreateListing(context.Background(), req)
			require.Error(t, err)

			errorResponse, ok := err.(*models.ErrorResponse)
			require.True(t, ok, "expected *models.ErrorResponse, got %T", err)
			assert.Equal(t, http.StatusUnprocessableEntity, errorResponse.StatusCode)

			// Nothing may be persisted on a failed create.
			count, err := repo.CountListings(context.Background(), "")
			require.NoError(t, err)
			assert.Equal(t, int64(0), count)
		})
	}
}

func TestFetchListingsNewestFirst(t *testing.T) {
	repo := newMemoryListingRepo()
	svc := NewListingService(repo)

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		req := validRequest()
		req.Title = title
		_, err := svc.CreateListing(context.Background(), req)
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	listings, err := svc.FetchListings(context.Background(), nil, "", "")
	require.NoError(t, err)
	require.Len(t, listings, 3)
	assert.Equal(t, "third", listings[0].Title)
	assert.Equal(t, "second", listings[1].Title)
	assert.Equal(t, "first", listings[2].Title)
}

func TestFetchListingsEmptyResultIsNotAnError(t *testing.T) {
	repo := newMemoryListingRepo()
	svc := NewListingService(repo)

	listings, err := svc.FetchListings(context.Background(), nil, "", "")
	require.NoError(t, err)
	assert.NotNil(t, listings)
	assert.Empty(t, listings)
}

func TestFetchListingsFilters(t *testing.T) {
	repo := newMemoryListingRepo()
	svc := NewListingService(repo)

	seed := []struct {
		title       string
		description string
		category    string
		itemType    models.ListingType
	}{
		{"Oak Bookshelf", "Solid oak, five shelves", "Furniture", models.GiveAway},
		{"Kitchen Mixer", "Barely used stand mixer", "Appliances", models.Barter},
		{"Desk Lamp", "LED lamp, needs a bulb", "Furniture", models.Barter},
	}
	for _, s := range seed {
		req := validRequest()
		req.Title = s.title
		req.Description = s.description
		req.Category = s.category
		req.ItemType = s.itemType
		_, err := svc.CreateListing(context.Background(), req)
		require.NoError(t, err)
	}

	t.Run("category is exact and case-sensitive", func(t *testing.T) {
		listings, err := svc.FetchListings(context.Background(), []string{"Furniture"}, "", "")
		require.NoError(t, err)
		assert.Len(t, listings, 2)

		listings, err = svc.FetchListings(context.Background(), []string{"furniture"}, "", "")
		require.NoError(t, err)
		assert.Empty(t, listings)
	})

	t.Run("item type equality", func(t *testing.T) {
		listings, err := svc.FetchListings(context.Background(), nil, "barter", "")
		require.NoError(t, err)
		assert.Len(t, listings, 2)
	})

	t.Run("search matches title or description case-insensitively", func(t *testing.T) {
		listings, err := svc.FetchListings(context.Background(), nil, "", "OAK")
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, "Oak Bookshelf", listings[0].Title)

		listings, err = svc.FetchListings(context.Background(), nil, "", "stand mixer")
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, "Kitchen Mixer", listings[0].Title)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		listings, err := svc.FetchListings(context.Background(), []string{"Furniture"}, "barter", "lamp")
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, "Desk Lamp", listings[0].Title)
	})
}

func TestGetListingNotFound(t *testing.T) {
	svc := NewListingService(newMemoryListingRepo())

	_, err := svc.GetListing(context.Background(), "no-such-id")
	require.Error(t, err)

	errorResponse, ok := err.(*models.ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, errorResponse.StatusCode)
}

func TestUpdateListingStatus(t *testing.T) {
	repo := newMemoryListingRepo()
	svc := NewListingService(repo)

	listing, err := svc.CreateListing(context.Background(), validRequest())
	require.NoError(t, err)

	err = svc.UpdateListingStatus(context.Background(), listing.ID, "claimed")
	require.NoError(t, err)

	updated, err := svc.GetListing(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusClaimed, updated.Status)

	// Only the status changed.
	expected := *listing
	expected.Status = models.StatusClaimed
	assert.Equal(t, expected, *updated)

	// Claimed listings disappear from the default available view.
	listings, err := svc.FetchListings(context.Background(), nil, "", "")
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestUpdateListingStatusPermitsAnyDirection(t *testing.T) {
	repo := newMemoryListingRepo()
	svc := NewListingService(repo)

	listing, err := svc.CreateListing(context.Background(), validRequest())
	require.NoError(t, err)

	// No ordering restriction between the three states.
	for _, status := range []string{"completed", "claimed", "available", "completed", "available"} {
		require.NoError(t, svc.UpdateListingStatus(context.Background(), listing.ID, status))
	}

	updated, err := svc.GetListing(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, updated.Status)
}

func TestUpdateListingStatusRejectsUnknownValue(t *testing.T) {
	repo := newMemoryListingRepo()
	svc := NewListingService(repo)

	listing, err := svc.CreateListing(context.Background(), validRequest())
	require.NoError(t, err)

	err = svc.UpdateListingStatus(context.Background(), listing.ID, "archived")
	require.Error(t, err)

	errorResponse, ok := err.(*models.ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, errorResponse.StatusCode)

	unchanged, err := svc.GetListing(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, unchanged.Status)
}

func TestUpdateListingStatusNotFound(t *testing.T) {
	svc := NewListingService(newMemoryListingRepo())

	err := svc.UpdateListingStatus(context.Background(), "no-such-id", "claimed")
	require.Error(t, err)

	errorResponse, ok := err.(*models.ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, errorResponse.StatusCode)
}

func TestGetStats(t *testing.T) {
	repo := newMemoryListingRepo()
	svc := NewListingService(repo)

	var ids []string
	for i := 0; i < 3; i++ {
		listing, err := svc.CreateListing(context.Background(), validRequest())
		require.NoError(t, err)
		ids = append(ids, listing.ID)
	}
	require.NoError(t, svc.UpdateListingStatus(context.Background(), ids[0], "completed"))

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalListings)
	assert.Equal(t, int64(2), stats.AvailableItems)
	assert.Equal(t, int64(1), stats.ItemsRehomed)
	assert.InDelta(t, 2.5, stats.WasteDivertedKg, 1e-9)
}
