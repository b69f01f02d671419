package assets

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"assettrack/internal/core/response"
	"assettrack/pkg/metadata"
	"assettrack/pkg/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Service interface {
	Get(ctx context.Context, id string) (*models.Asset, error)
	List(ctx context.Context) ([]models.Asset, error)
	Search(ctx context.Context, term string) ([]models.Asset, error)
	ListByStatus(ctx context.Context, status metadata.AssetStatus) ([]models.Asset, error)
	ListByAssignee(ctx context.Context, userID int64) ([]models.Asset, error)
	History(ctx context.Context, id string) ([]models.HistoryEntry, error)
	Create(ctx context.Context, req models.AssetRequest) (*models.Asset, error)
	Update(ctx context.Context, id string, req models.AssetRequest) (*models.Asset, error)
	Delete(ctx context.Context, id string) error
}

type AssetHandler struct {
	service Service
	logger  *zap.Logger
}

func NewAssetHandler(service Service, logger *zap.Logger) *AssetHandler {
	return &AssetHandler{
		service: service,
		logger:  logger,
	}
}

func (h *AssetHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/assets", h.GetAssets)
	router.POST("/assets", h.CreateAsset)
	router.GET("/assets/:id", h.GetAsset)
	router.PUT("/assets/:id", h.UpdateAsset)
	router.DELETE("/assets/:id", h.RemoveAsset)
	router.GET("/assets/:id/history", h.GetAssetHistory)
	router.GET("/users/:id/assets", h.GetUserAssets)
}

// GetAssets lists every asset, or filters by ?search= or ?status= when given.
// A blank search term lists everything.
func (h *AssetHandler) GetAssets(c *gin.Context) {
	var (
		assets []models.Asset
		err    error
	)

	search := strings.TrimSpace(c.Query("search"))
	statusParam := c.Query("status")

	switch {
	case search != "":
		assets, err = h.service.Search(c.Request.Context(), search)
	case statusParam != "":
		status, parseErr := metadata.NewAssetStatus(statusParam)
		if parseErr != nil {
			response.BindError(c, parseErr)
			return
		}
		assets, err = h.service.ListByStatus(c.Request.Context(), status)
	default:
		assets, err = h.service.List(c.Request.Context())
	}

	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, assets)
}

func (h *AssetHandler) GetAsset(c *gin.Context) {
	asset, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (h *AssetHandler) GetAssetHistory(c *gin.Context) {
	history, err := h.service.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

func (h *AssetHandler) GetUserAssets(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	assets, err := h.service.ListByAssignee(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, assets)
}

func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req models.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	asset, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, asset)
}

func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	var req models.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	asset, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (h *AssetHandler) RemoveAsset(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
