package postgres

import (
	"context"
	"errors"

	"empleaworks-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `INSERT INTO candidate_profiles (user_id, surname, cv_path) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, profile.UserID, profile.Surname, profile.CVPath)
	return err
}

func (r *candidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	query := `SELECT user_id, surname, cv_path FROM candidate_profiles WHERE user_id = $1`
	var profile domain.CandidateProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(&profile.UserID, &profile.Surname, &profile.CVPath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *candidateRepo) Update(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `UPDATE candidate_profiles SET surname = $2, cv_path = $3 WHERE user_id = $1`
	result, err := r.db.Exec(ctx, query, profile.UserID, profile.Surname, profile.CVPath)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
