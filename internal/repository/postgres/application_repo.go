package postgres

import (
	"context"

	"empleaworks-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts the relation row. The primary key on (user_id, offer_id)
// settles concurrent duplicate applies: the losing writer gets
// domain.ErrDuplicateApplication, same as a sequential duplicate.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (user_id, offer_id, created_at) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, app.UserID, app.OfferID, app.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *applicationRepo) Exists(ctx context.Context, userID string, offerID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE user_id = $1 AND offer_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, offerID).Scan(&exists)
	return exists, err
}

// FetchOffers returns applied-to offers, most recent application first.
// The secondary o.id sort keeps ordering stable under equal timestamps.
func (r *applicationRepo) FetchOffers(ctx context.Context, userID string) ([]domain.OfferView, error) {
	query := `
	SELECT
		o.id, o.name, o.description, o.category, o.degree, o.email,
		o.contract_type, o.job_location, o.closing_date,
		u.id, u.name, u.email, u.image_path, u.description,
		cp.address, cp.web_link
	FROM applications a
	JOIN offers o ON o.id = a.offer_id
	LEFT JOIN users u ON o.user_id = u.id
	LEFT JOIN company_profiles cp ON cp.user_id = u.id
	WHERE a.user_id = $1
	ORDER BY a.created_at DESC, o.id DESC`

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
