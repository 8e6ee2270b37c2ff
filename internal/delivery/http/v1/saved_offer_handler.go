package v1

import (
	"net/http"

	"empleaworks-backend/internal/delivery/http/response"
	"empleaworks-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SavedOfferHandler struct {
	savedUC domain.SavedOfferUsecase
}

func NewSavedOfferHandler(protected *gin.RouterGroup, savedUC domain.SavedOfferUsecase) {
	handler := &SavedOfferHandler{savedUC: savedUC}

	offers := protected.Group("/offers")
	{
		offers.POST("/:id/save", handler.Toggle)
	}

	candidates := protected.Group("/candidates")
	{
		candidates.GET("/me/saved-offers", handler.ListSaved)
	}
}

func (h *SavedOfferHandler) Toggle(c *gin.Context) {
	id, err := offerID(c)
	if err != nil {
		c.Error(err)
		return
	}

	candidateID := c.GetString(string(domain.KeyUserID))
	saved, err := h.savedUC.Toggle(c, candidateID, id)
	if err != nil {
		c.Error(err)
		return
	}

	message := "Offer saved"
	if !saved {
		message = "Offer unsaved"
	}
	response.Success(c, http.StatusOK, message, gin.H{"saved": saved})
}

func (h *SavedOfferHandler) ListSaved(c *gin.Context) {
	candidateID := c.GetString(string(domain.KeyUserID))

	offers, err := h.savedUC.ListSaved(c, candidateID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Your saved offers", offers)
}
