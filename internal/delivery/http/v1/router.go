package v1

import (
	"net/http"

	"empleaworks-backend/config"
	"empleaworks-backend/internal/delivery/http/middleware"
	"empleaworks-backend/internal/delivery/http/response"
	"empleaworks-backend/internal/domain"
	"empleaworks-backend/pkg/oauth"
	"empleaworks-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	CandidateUC   domain.CandidateUsecase
	CompanyUC     domain.CompanyUsecase
	OfferUC       domain.OfferUsecase
	ApplicationUC domain.ApplicationUsecase
	SavedOfferUC  domain.SavedOfferUsecase
	Tokens        *token.Manager
	Google        *oauth.GoogleProvider
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// CORS must run before anything that can abort the request
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig()))

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Credential endpoints get the strict limiter on top of the global one
	login := v1.Group("")
	login.Use(middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig()))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))

	uploads := protected.Group("")
	uploads.Use(middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig()))

	// Offer mutation is company-only; the role gate runs before any
	// ownership check so a candidate never learns whether an id exists
	companyOnly := protected.Group("")
	companyOnly.Use(middleware.RequireRole(domain.RoleCompany))

	NewAuthHandler(login, protected, deps.AuthUC, deps.Google, deps.Config)
	NewOfferHandler(v1, companyOnly, deps.OfferUC)
	NewCandidateHandler(protected, uploads, deps.CandidateUC)
	NewCompanyHandler(protected, uploads, deps.CompanyUC)
	NewApplicationHandler(protected, deps.ApplicationUC)
	NewSavedOfferHandler(protected, deps.SavedOfferUC)

	return r
}
