package admin

import (
	"context"
	"net/http"

	"assettrack/internal/core/response"
	"assettrack/pkg/models"
	"assettrack/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Service interface {
	Profile(ctx context.Context, username string) (*models.Admin, error)
	UpdateProfile(ctx context.Context, username string, req models.AdminUpdateRequest) (*models.Admin, error)
}

type AdminHandler struct {
	service Service
	logger  *zap.Logger
}

func NewAdminHandler(service Service, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger,
	}
}

func (h *AdminHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/admin/profile", h.GetProfile)
	router.PUT("/admin/profile", h.UpdateProfile)
}

func (h *AdminHandler) GetProfile(c *gin.Context) {
	username, ok := security.CurrentUsername(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	admin, err := h.service.Profile(c.Request.Context(), username)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, admin)
}

func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	username, ok := security.CurrentUsername(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.AdminUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	admin, err := h.service.UpdateProfile(c.Request.Context(), username, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, admin)
}
