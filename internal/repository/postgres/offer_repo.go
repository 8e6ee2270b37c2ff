package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"empleaworks-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type offerRepo struct {
	db *pgxpool.Pool
}

func NewOfferRepository(db *pgxpool.Pool) domain.OfferRepository {
	return &offerRepo{db: db}
}

func (r *offerRepo) Create(ctx context.Context, offer *domain.Offer) error {
	query := `INSERT INTO offers (user_id, name, description, category, degree, email, contract_type, job_location, closing_date, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		offer.UserID, offer.Name, offer.Description, offer.Category, offer.Degree,
		offer.Email, offer.ContractType, offer.JobLocation, offer.ClosingDate,
		offer.CreatedAt, offer.UpdatedAt,
	).Scan(&offer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateTitle
		}
		return err
	}
	return nil
}

func (r *offerRepo) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	query := `SELECT id, user_id, name, description, category, degree, email, contract_type, job_location, closing_date, created_at, updated_at
              FROM offers WHERE id = $1`
	var offer domain.Offer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&offer.ID, &offer.UserID, &offer.Name, &offer.Description, &offer.Category,
		&offer.Degree, &offer.Email, &offer.ContractType, &offer.JobLocation,
		&offer.ClosingDate, &offer.CreatedAt, &offer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &offer, nil
}

// offerViewSelect joins an offer with the owning company's public
// profile fields. The company columns are nullable so a dangling owner
// degrades to company = null instead of dropping the offer.
const offerViewSelect = `
	SELECT
		o.id, o.name, o.description, o.category, o.degree, o.email,
		o.contract_type, o.job_location, o.closing_date,
		u.id, u.name, u.email, u.image_path, u.description,
		cp.address, cp.web_link
	FROM offers o
	LEFT JOIN users u ON o.user_id = u.id
	LEFT JOIN company_profiles cp ON cp.user_id = u.id`

func scanOfferView(row pgx.Row) (*domain.OfferView, error) {
	var view domain.OfferView
	var companyID, companyName, companyEmail *string
	var logo, companyDesc, address, webLink *string

	err := row.Scan(
		&view.ID, &view.Name, &view.Description, &view.Category, &view.Degree,
		&view.Email, &view.ContractType, &view.JobLocation, &view.ClosingDate,
		&companyID, &companyName, &companyEmail, &logo, &companyDesc,
		&address, &webLink,
	)
	if err != nil {
		return nil, err
	}

	if companyID != nil {
		view.Company = &domain.CompanyView{
			ID:          *companyID,
			Name:        deref(companyName),
			Email:       deref(companyEmail),
			Logo:        logo,
			Description: companyDesc,
			Address:     address,
			WebLink:     webLink,
		}
	}
	return &view, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *offerRepo) GetViewByID(ctx context.Context, id int64) (*domain.OfferView, error) {
	view, err := scanOfferView(r.db.QueryRow(ctx, offerViewSelect+` WHERE o.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return view, nil
}

func (r *offerRepo) Fetch(ctx context.Context, filter domain.OfferFilter) ([]domain.OfferView, error) {
	query := offerViewSelect
	var conditions []string
	var args []any

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		conditions = append(conditions, fmt.Sprintf("(o.name ILIKE $%d OR o.description ILIKE $%d)", len(args), len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("o.category = $%d", len(args)))
	}
	if filter.ContractType != "" {
		args = append(args, filter.ContractType)
		conditions = append(conditions, fmt.Sprintf("o.contract_type = $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY o.created_at DESC, o.id DESC"

	return r.fetchViews(ctx, query, args...)
}

func (r *offerRepo) FetchByOwner(ctx context.Context, ownerID string) ([]domain.OfferView, error) {
	query := offerViewSelect + ` WHERE o.user_id = $1 ORDER BY o.created_at DESC, o.id DESC`
	return r.fetchViews(ctx, query, ownerID)
}

func (r *offerRepo) fetchViews(ctx context.Context, query string, args ...any) ([]domain.OfferView, error) {
	rows, err := r.db.Query(ctx, query, args...)
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

func (r *offerRepo) Update(ctx context.Context, offer *domain.Offer) error {
	query := `UPDATE offers SET
		name = $2,
		description = $3,
		category = $4,
		degree = $5,
		email = $6,
		contract_type = $7,
		job_location = $8,
		closing_date = $9,
		updated_at = $10
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		offer.ID, offer.Name, offer.Description, offer.Category, offer.Degree,
		offer.Email, offer.ContractType, offer.JobLocation, offer.ClosingDate,
		offer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateTitle
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *offerRepo) Delete(ctx context.Context, id int64) error {
	// Application and saved-offer rows go via ON DELETE CASCADE.
	result, err := r.db.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *offerRepo) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM offers WHERE name = $1 AND id <> $2)`
	var taken bool
	err := r.db.QueryRow(ctx, query, name, excludeID).Scan(&taken)
	return taken, err
}

func (r *offerRepo) FindClosedBefore(ctx context.Context, cutoff time.Time) ([]domain.Offer, error) {
	query := `SELECT id, user_id, name, description, category, degree, email, contract_type, job_location, closing_date, created_at, updated_at
              FROM offers WHERE closing_date <= $1 ORDER BY closing_date`
	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		var offer domain.Offer
		if err := rows.Scan(
			&offer.ID, &offer.UserID, &offer.Name, &offer.Description, &offer.Category,
			&offer.Degree, &offer.Email, &offer.ContractType, &offer.JobLocation,
			&offer.ClosingDate, &offer.CreatedAt, &offer.UpdatedAt,
		); err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}
