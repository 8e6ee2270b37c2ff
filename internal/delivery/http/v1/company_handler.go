package v1

import (
	"net/http"

	"empleaworks-backend/internal/delivery/http/response"
	"empleaworks-backend/internal/domain"
	"empleaworks-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(protected *gin.RouterGroup, uploads *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	companies := protected.Group("/companies")
	{
		companies.GET("/me", handler.GetProfile)
		companies.PUT("/me", handler.UpdateProfile)
	}

	companyUploads := uploads.Group("/companies")
	{
		companyUploads.POST("/me/logo", handler.UploadLogo)
	}
}

func (h *CompanyHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.companyUC.GetProfile(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile", profile)
}

type UpdateCompanyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Address     *string `json:"address"`
	WebLink     *string `json:"web_link"`
	Description *string `json:"description"`
}

func (h *CompanyHandler) UpdateProfile(c *gin.Context) {
	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	err := h.companyUC.UpdateProfile(c, userID, domain.UpdateCompanyInput{
		Name:        req.Name,
		Address:     req.Address,
		WebLink:     req.WebLink,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", nil)
}

func (h *CompanyHandler) UploadLogo(c *gin.Context) {
	filename, data, mime, err := readUpload(c, "logo")
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	path, err := h.companyUC.UploadLogo(c, userID, filename, data, mime)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Logo uploaded", gin.H{"path": path})
}
