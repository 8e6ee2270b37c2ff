package domain

import "context"

// CandidateProfile is the 1:1 extension row of a candidate-role user.
type CandidateProfile struct {
	UserID  string  `json:"user_id"`
	Surname string  `json:"surname"`
	CVPath  *string `json:"cv"`
}

// CandidateView joins the user row with its profile extension.
type CandidateView struct {
	User    User             `json:"user"`
	Profile CandidateProfile `json:"profile"`
}

type CandidateRepository interface {
	Create(ctx context.Context, profile *CandidateProfile) error
	GetByUserID(ctx context.Context, userID string) (*CandidateProfile, error)
	Update(ctx context.Context, profile *CandidateProfile) error
}

type UpdateCandidateInput struct {
	Name        string  `validate:"required,min=2,max=100"`
	Surname     string  `validate:"required,min=2,max=100"`
	Description *string `validate:"omitempty,max=1000"`
}

type CandidateUsecase interface {
	GetProfile(ctx context.Context, userID string) (*CandidateView, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateCandidateInput) error
	UploadAvatar(ctx context.Context, userID, filename string, data []byte, mime string) (string, error)
	UploadCV(ctx context.Context, userID, filename string, data []byte, mime string) (string, error)
	DeleteCV(ctx context.Context, userID string) error
}
