package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/harir2002/cyber-resilience-Quiz/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CompanyRepository handles company data access.
type CompanyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository creates a new CompanyRepository.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

// Create inserts a new company and returns its generated ID and timestamp.
func (r *CompanyRepository) Create(ctx context.Context, c *model.Company) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO companies (name, industry, size, region, contact_email, contact_name, additional_notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		c.Name, c.Industry, c.Size, c.Region, c.ContactEmail, c.ContactName, c.AdditionalNotes,
	).Scan(&c.ID, &c.CreatedAt)
}

// GetByID retrieves a company by its ID.
func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	c := &model.Company{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, industry, size, region, contact_email, contact_name, additional_notes, created_at
		 FROM companies
		 WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Industry, &c.Size, &c.Region, &c.ContactEmail, &c.ContactName, &c.AdditionalNotes, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Count returns the total number of registered companies.
func (r *CompanyRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&n)
	return n, err
}
