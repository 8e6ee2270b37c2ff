package v1

import (
	"io"
	"net/http"

	"empleaworks-backend/internal/delivery/http/response"
	"empleaworks-backend/internal/domain"
	"empleaworks-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps multipart reads before validation sees the data.
const maxUploadBytes = 10 << 20

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(protected *gin.RouterGroup, uploads *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := protected.Group("/candidates")
	{
		candidates.GET("/me", handler.GetProfile)
		candidates.PUT("/me", handler.UpdateProfile)
		candidates.DELETE("/me/cv", handler.DeleteCV)
	}

	candidateUploads := uploads.Group("/candidates")
	{
		candidateUploads.POST("/me/avatar", handler.UploadAvatar)
		candidateUploads.POST("/me/cv", handler.UploadCV)
	}
}

func (h *CandidateHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.candidateUC.GetProfile(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

type UpdateCandidateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Surname     string  `json:"surname" binding:"required"`
	Description *string `json:"description"`
}

func (h *CandidateHandler) UpdateProfile(c *gin.Context) {
	var req UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	err := h.candidateUC.UpdateProfile(c, userID, domain.UpdateCandidateInput{
		Name:        req.Name,
		Surname:     req.Surname,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", nil)
}

func (h *CandidateHandler) UploadAvatar(c *gin.Context) {
	filename, data, mime, err := readUpload(c, "image")
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	path, err := h.candidateUC.UploadAvatar(c, userID, filename, data, mime)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Avatar uploaded", gin.H{"path": path})
}

func (h *CandidateHandler) UploadCV(c *gin.Context) {
	filename, data, mime, err := readUpload(c, "cv")
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	path, err := h.candidateUC.UploadCV(c, userID, filename, data, mime)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "CV uploaded", gin.H{"path": path})
}

func (h *CandidateHandler) DeleteCV(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.candidateUC.DeleteCV(c, userID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "CV removed", nil)
}

// readUpload pulls one multipart file field, enforcing the size cap
// before the bytes reach validation.
func readUpload(c *gin.Context, field string) (string, []byte, string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil, "", apperror.BadRequest("Missing file field: " + field)
	}
	if fileHeader.Size > maxUploadBytes {
		return "", nil, "", apperror.BadRequest("File too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, "", apperror.Internal(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return "", nil, "", apperror.Internal(err)
	}
	if len(data) > maxUploadBytes {
		return "", nil, "", apperror.BadRequest("File too large")
	}

	return fileHeader.Filename, data, fileHeader.Header.Get("Content-Type"), nil
}
