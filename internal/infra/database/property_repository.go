package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/londonlets/api/internal/entity"
)

type PropertyRepository struct {
	DB *sql.DB
}

func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

const propertyColumns = `id, title, borough, address, property_type, rent_price, bedrooms, bathrooms, description, image_url, source, source_url, is_premium_listing, created_at`

// Create inserts a published listing. A unique index on source_url keeps
// re-runs of the pipeline from duplicating listings; hitting it maps to
// ErrDuplicateListing so the pipeline can skip instead of fail.
func (r *PropertyRepository) Create(ctx context.Context, p *entity.Property) error {
	query := `
		INSERT INTO properties (id, title, borough, address, property_type, rent_price, bedrooms, bathrooms, description, image_url, source, source_url, is_premium_listing, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.DB.ExecContext(ctx, query,
		p.ID,
		p.Title,
		p.Borough,
		p.Address,
		p.PropertyType,
		p.RentPrice,
		p.Bedrooms,
		nullInt(p.Bathrooms),
		p.Description,
		nullString(p.ImageURL),
		p.Source,
		nullString(p.SourceURL),
		p.IsPremiumListing,
		p.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrDuplicateListing
		}
		log.Printf("[Database] property insert failed: %v", err)
		return err
	}

	return nil
}

func (r *PropertyRepository) FindAll(ctx context.Context) ([]*entity.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*entity.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*entity.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`

	p, err := scanProperty(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func scanProperty(row rowScanner) (*entity.Property, error) {
	var p entity.Property
	var bathrooms sql.NullInt64
	var imageURL, sourceURL sql.NullString

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Borough,
		&p.Address,
		&p.PropertyType,
		&p.RentPrice,
		&p.Bedrooms,
		&bathrooms,
		&p.Description,
		&imageURL,
		&p.Source,
		&sourceURL,
		&p.IsPremiumListing,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if bathrooms.Valid {
		b := int(bathrooms.Int64)
		p.Bathrooms = &b
	}
	p.ImageURL = imageURL.String
	p.SourceURL = sourceURL.String
	return &p, nil
}
