package domain

import "context"

// CompanyProfile is the 1:1 extension row of a company-role user.
type CompanyProfile struct {
	UserID  string  `json:"user_id"`
	Address *string `json:"address"`
	WebLink *string `json:"web_link"`
}

// CompanyView is the public shape of a company, embedded in offer reads.
type CompanyView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Logo        *string `json:"logo"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	WebLink     *string `json:"web_link"`
}

type CompanyRepository interface {
	Create(ctx context.Context, profile *CompanyProfile) error
	GetByUserID(ctx context.Context, userID string) (*CompanyProfile, error)
	Update(ctx context.Context, profile *CompanyProfile) error
}

type UpdateCompanyInput struct {
	Name        string  `validate:"required,min=2,max=100"`
	Address     *string `validate:"omitempty,max=255"`
	WebLink     *string `validate:"omitempty,url"`
	Description *string `validate:"omitempty,max=1000"`
}

type CompanyUsecase interface {
	GetProfile(ctx context.Context, userID string) (*CompanyProfile, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateCompanyInput) error
	UploadLogo(ctx context.Context, userID, filename string, data []byte, mime string) (string, error)
}
