package postgres

import (
	"context"

	"empleaworks-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type savedOfferRepo struct {
	db *pgxpool.Pool
}

func NewSavedOfferRepository(db *pgxpool.Pool) domain.SavedOfferRepository {
	return &savedOfferRepo{db: db}
}

func (r *savedOfferRepo) Create(ctx context.Context, saved *domain.SavedOffer) error {
	query := `INSERT INTO saved_offers (user_id, offer_id, created_at) VALUES ($1, $2, $3)
              ON CONFLICT (user_id, offer_id) DO NOTHING`
	_, err := r.db.Exec(ctx, query, saved.UserID, saved.OfferID, saved.CreatedAt)
	return err
}

func (r *savedOfferRepo) Delete(ctx context.Context, userID string, offerID int64) error {
	// Deleting an already-removed bookmark is a no-op, not an error: the
	// toggle's outcome is the resulting state, not the row count.
	_, err := r.db.Exec(ctx, `DELETE FROM saved_offers WHERE user_id = $1 AND offer_id = $2`, userID, offerID)
	return err
}

func (r *savedOfferRepo) Exists(ctx context.Context, userID string, offerID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM saved_offers WHERE user_id = $1 AND offer_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, offerID).Scan(&exists)
	return exists, err
}

func (r *savedOfferRepo) FetchOffers(ctx context.Context, userID string) ([]domain.OfferView, error) {
	query := `
	SELECT
		o.id, o.name, o.description, o.category, o.degree, o.email,
		o.contract_type, o.job_location, o.closing_date,
		u.id, u.name, u.email, u.image_path, u.description,
		cp.address, cp.web_link
	FROM saved_offers s
	JOIN offers o ON o.id = s.offer_id
	LEFT JOIN users u ON o.user_id = u.id
	LEFT JOIN company_profiles cp ON cp.user_id = u.id
	WHERE s.user_id = $1
	ORDER BY s.created_at DESC, o.id DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []domain.OfferView
	for rows.Next() {
		view, err := scanOfferView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, rows.Err()
}
