package v1

import (
	"net/http"
	"strconv"
	"time"

	"empleaworks-backend/internal/delivery/http/response"
	"empleaworks-backend/internal/domain"
	"empleaworks-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	offerUC domain.OfferUsecase
}

func NewOfferHandler(public *gin.RouterGroup, protected *gin.RouterGroup, offerUC domain.OfferUsecase) {
	handler := &OfferHandler{offerUC: offerUC}

	// Browsing is open to everyone, including anonymous visitors
	publicOffers := public.Group("/offers")
	{
		publicOffers.GET("", handler.List)
		publicOffers.GET("/:id", handler.Get)
	}

	protectedOffers := protected.Group("/offers")
	{
		protectedOffers.POST("", handler.Create)
		protectedOffers.PUT("/:id", handler.Update)
		protectedOffers.DELETE("/:id", handler.Delete)
	}

	companies := protected.Group("/companies")
	{
		companies.GET("/me/offers", handler.ListOwn)
	}
}

type OfferRequest struct {
	Name         string    `json:"name" binding:"required"`
	Description  string    `json:"description" binding:"required"`
	Category     string    `json:"category" binding:"required"`
	Degree       string    `json:"degree" binding:"required"`
	Email        string    `json:"email" binding:"required,email"`
	ContractType string    `json:"contract_type" binding:"required"`
	JobLocation  string    `json:"job_location" binding:"required"`
	ClosingDate  time.Time `json:"closing_date" binding:"required"`
}

func (r OfferRequest) toInput() domain.OfferInput {
	return domain.OfferInput{
		Name:         r.Name,
		Description:  r.Description,
		Category:     r.Category,
		Degree:       r.Degree,
		Email:        r.Email,
		ContractType: r.ContractType,
		JobLocation:  r.JobLocation,
		ClosingDate:  r.ClosingDate,
	}
}

func (h *OfferHandler) List(c *gin.Context) {
	filter := domain.OfferFilter{
		Query:        c.Query("q"),
		Category:     c.Query("category"),
		ContractType: c.Query("contract_type"),
	}

	offers, err := h.offerUC.ListOffers(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Offers", offers)
}

func (h *OfferHandler) Get(c *gin.Context) {
	id, err := offerID(c)
	if err != nil {
		c.Error(err)
		return
	}

	offer, err := h.offerUC.GetOffer(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Offer details", offer)
}

func (h *OfferHandler) Create(c *gin.Context) {
	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	ownerID := c.GetString(string(domain.KeyUserID))
	offer, err := h.offerUC.CreateOffer(c, ownerID, req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Offer created", offer)
}

func (h *OfferHandler) Update(c *gin.Context) {
	id, err := offerID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	callerID := c.GetString(string(domain.KeyUserID))
	offer, err := h.offerUC.UpdateOffer(c, id, callerID, req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Offer updated", offer)
}

func (h *OfferHandler) Delete(c *gin.Context) {
	id, err := offerID(c)
	if err != nil {
		c.Error(err)
		return
	}

	callerID := c.GetString(string(domain.KeyUserID))
	if err := h.offerUC.DeleteOffer(c, id, callerID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Offer deleted", nil)
}

func (h *OfferHandler) ListOwn(c *gin.Context) {
	ownerID := c.GetString(string(domain.KeyUserID))

	offers, err := h.offerUC.ListOwnOffers(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Your offers", offers)
}

func offerID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.BadRequest("Invalid offer id")
	}
	return id, nil
}
