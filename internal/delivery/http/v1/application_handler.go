package v1

import (
	"net/http"

	"empleaworks-backend/internal/delivery/http/response"
	"empleaworks-backend/internal/domain"
	"empleaworks-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	offers := protected.Group("/offers")
	{
		offers.POST("/:id/apply", handler.Apply)
		offers.GET("/:id/applied", handler.HasApplied)
	}

	candidates := protected.Group("/candidates")
	{
		candidates.GET("/me/applications", handler.ListApplications)
	}
}

type ApplyRequest struct {
	Phone string `json:"phone"`
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	id, err := offerID(c)
	if err != nil {
		c.Error(err)
		return
	}

	// Body is optional; the contact phone only feeds the mails
	var req ApplyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
	}

	candidateID := c.GetString(string(domain.KeyUserID))
	if err := h.applicationUC.Apply(c, candidateID, id, domain.ContactFields{Phone: req.Phone}); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", nil)
}

func (h *ApplicationHandler) HasApplied(c *gin.Context) {
	id, err := offerID(c)
	if err != nil {
		c.Error(err)
		return
	}

	candidateID := c.GetString(string(domain.KeyUserID))
	applied, err := h.applicationUC.HasApplied(c.Request.Context(), candidateID, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status", gin.H{"applied": applied})
}

func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	candidateID := c.GetString(string(domain.KeyUserID))

	offers, err := h.applicationUC.ListApplications(c.Request.Context(), candidateID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Your applications", offers)
}
