package v1

import (
	"net/http"
	"net/url"

	"empleaworks-backend/config"
	"empleaworks-backend/internal/delivery/http/response"
	"empleaworks-backend/internal/domain"
	"empleaworks-backend/pkg/apperror"
	"empleaworks-backend/pkg/oauth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	authUC domain.AuthUsecase
	google *oauth.GoogleProvider
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, google *oauth.GoogleProvider, cfg *config.Config) {
	handler := &AuthHandler{authUC: authUC, google: google, config: cfg}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", handler.Login)
		publicAuth.GET("/google", handler.GoogleRedirect)
		publicAuth.GET("/google/callback", handler.GoogleCallback)
		publicAuth.POST("/forgot-password", handler.ForgotPassword)
		publicAuth.POST("/reset-password", handler.ResetPassword)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
		protectedAuth.DELETE("/account", handler.DeleteAccount)
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=candidate company"`
	Locale   string `json:"locale"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type sessionPayload struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, tok, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
		Locale:   req.Locale,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.setSessionCookie(c, tok)
	response.Success(c, http.StatusCreated, "Account created", sessionPayload{Token: tok, User: user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, tok, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	h.setSessionCookie(c, tok)
	response.Success(c, http.StatusOK, "Logged in", sessionPayload{Token: tok, User: user})
}

// GoogleRedirect starts the OAuth flow. The state nonce lives in a
// short-lived cookie and is checked again in the callback.
func (h *AuthHandler) GoogleRedirect(c *gin.Context) {
	if !h.google.IsConfigured() {
		c.Error(apperror.New(http.StatusNotImplemented, "Google sign-in is not configured", nil))
		return
	}

	state := uuid.NewString()
	c.SetCookie(oauthStateCookie, state, 300, "/", "", true, true)
	c.Redirect(http.StatusTemporaryRedirect, h.google.AuthCodeURL(state))
}

func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		c.Error(apperror.BadRequest("OAuth state mismatch"))
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", true, true)

	code := c.Query("code")
	if code == "" {
		c.Error(apperror.BadRequest("Missing authorization code"))
		return
	}

	googleUser, err := h.google.Exchange(c.Request.Context(), code)
	if err != nil {
		c.Error(apperror.Unauthorized("Google sign-in failed"))
		return
	}

	_, tok, err := h.authUC.LoginWithGoogle(c.Request.Context(), domain.GoogleIdentity{
		Subject: googleUser.ID,
		Email:   googleUser.Email,
		Name:    googleUser.Name,
		Picture: googleUser.Picture,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.setSessionCookie(c, tok)
	c.Redirect(http.StatusTemporaryRedirect, h.config.FrontendURL+"/auth/callback?token="+url.QueryEscape(tok))
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword answers 200 whether or not the email exists.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUC.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "If the email is registered, a reset link has been sent", nil)
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUC.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password updated", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current user", user)
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	var req DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.authUC.DeleteAccount(c.Request.Context(), userID, req.Password); err != nil {
		c.Error(err)
		return
	}

	h.clearSessionCookie(c)
	response.Success(c, http.StatusOK, "Account deleted", nil)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, tok string) {
	maxAge := h.config.TokenTTLHours * 3600
	c.SetCookie("auth_token", tok, maxAge, "/", "", true, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", true, true)
}
