package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/reusehub/reuse-platform/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// ListingRepository is the persistence contract for listings. The store
// treats records as opaque rows and performs no business validation.
type ListingRepository interface {
	CreateListing(ctx context.Context, listing models.Listing) error
	GetListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	GetListingByID(ctx context.Context, listingID string) (*models.Listing, error)
	UpdateListingStatus(ctx context.Context, listingID, status string) (bool, error)
	CountListings(ctx context.Context, status models.ListingStatus) (int64, error)
}

// PostgresListingRepository is the ListingRepository implementation backed
// by the database.
type PostgresListingRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresListingRepository creates a new PostgresListingRepository.
func NewPostgresListingRepository(db *pgxpool.Pool) *PostgresListingRepository {
	return &PostgresListingRepository{DB: db}
}

// CreateListing inserts a fully populated listing.
func (r *PostgresListingRepository) CreateListing(ctx context.Context, listing models.Listing) error {
	insertQuery := `INSERT INTO listing (id, title, description, category, condition, contact_info, contact_method, image_url, item_type, barter_wants, status, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.DB.Exec(
		ctx,
		insertQuery,
		listing.ID,
		listing.Title,
		listing.Description,
		listing.Category,
		listing.Condition,
		listing.ContactInfo,
		listing.ContactMethod,
		listing.ImageURL,
		listing.ItemType,
		listing.BarterWants,
		listing.Status,
		listing.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert listing: %w", err)
	}
	return nil
}

// GetListings returns the available listings matching the filter, newest
// first.
func (r *PostgresListingRepository) GetListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	query := `SELECT id, title, description, category, condition, contact_info, contact_method, image_url, item_type, barter_wants, status, created_at FROM listing`
	filters := []string{"status = 'available'"}
	var args []interface{}
	argIndex := 1

	if len(filter.Categories) > 0 {
		filters = append(filters, fmt.Sprintf("category = ANY($%d)", argIndex))
		args = append(args, pq.Array(filter.Categories))
		argIndex++
	}

	if filter.ItemType != "" {
		filters = append(filters, fmt.Sprintf("item_type = $%d", argIndex))
		args = append(args, filter.ItemType)
		argIndex++
	}

	if filter.Search != "" {
		filters = append(filters, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	query += " WHERE " + strings.Join(filters, " AND ") + " ORDER BY created_at DESC"

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		var listing models.Listing
		if err := rows.Scan(
			&listing.ID,
			&listing.Title,
			&listing.Description,
			&listing.Category,
			&listing.Condition,
			&listing.ContactInfo,
			&listing.ContactMethod,
			&listing.ImageURL,
			&listing.ItemType,
			&listing.BarterWants,
			&listing.Status,
			&listing.CreatedAt); err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

// GetListingByID returns a listing regardless of its status. Absent rows
// surface as pgx.ErrNoRows.
func (r *PostgresListingRepository) GetListingByID(ctx context.Context, listingID string) (*models.Listing, error) {
	var listing models.Listing
	query := `SELECT id, title, description, category, condition, contact_info, contact_method, image_url, item_type, barter_wants, status, created_at
	          FROM listing WHERE id = $1`
	err := r.DB.QueryRow(ctx, query, listingID).Scan(
		&listing.ID,
		&listing.Title,
		&listing.Description,
		&listing.Category,
		&listing.Condition,
		&listing.ContactInfo,
		&listing.ContactMethod,
		&listing.ImageURL,
		&listing.ItemType,
		&listing.BarterWants,
		&listing.Status,
		&listing.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// UpdateListingStatus changes the status of a listing and reports whether
// any row matched.
func (r *PostgresListingRepository) UpdateListingStatus(ctx context.Context, listingID, status string) (bool, error) {
	updateQuery := `UPDATE listing SET status = $1 WHERE id = $2`
	tag, err := r.DB.Exec(ctx, updateQuery, status, listingID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// CountListings counts listings, optionally restricted to one status. An
// empty status counts everything.
func (r *PostgresListingRepository) CountListings(ctx context.Context, status models.ListingStatus) (int64, error) {
	var count int64
	var err error
	if status == "" {
		err = r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM listing`).Scan(&count)
	} else {
		err = r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM listing WHERE status = $1`, status).Scan(&count)
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}
