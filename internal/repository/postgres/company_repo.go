package postgres

import (
	"context"
	"errors"

	"empleaworks-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, profile *domain.CompanyProfile) error {
	query := `INSERT INTO company_profiles (user_id, address, web_link) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, profile.UserID, profile.Address, profile.WebLink)
	return err
}

func (r *companyRepo) GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	query := `SELECT user_id, address, web_link FROM company_profiles WHERE user_id = $1`
	var profile domain.CompanyProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(&profile.UserID, &profile.Address, &profile.WebLink)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *companyRepo) Update(ctx context.Context, profile *domain.CompanyProfile) error {
	query := `UPDATE company_profiles SET address = $2, web_link = $3 WHERE user_id = $1`
	result, err := r.db.Exec(ctx, query, profile.UserID, profile.Address, profile.WebLink)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
