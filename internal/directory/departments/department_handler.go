package departments

import (
	"context"
	"net/http"
	"strconv"

	"assettrack/internal/core/response"
	"assettrack/pkg/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]models.Department, error)
	Get(ctx context.Context, id int64) (*models.Department, error)
	Create(ctx context.Context, req models.DepartmentRequest) (*models.Department, error)
	Update(ctx context.Context, id int64, req models.DepartmentRequest) (*models.Department, error)
	Delete(ctx context.Context, id int64) error
}

type DepartmentHandler struct {
	service Service
	logger  *zap.Logger
}

func NewDepartmentHandler(service Service, logger *zap.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		service: service,
		logger:  logger,
	}
}

func (h *DepartmentHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/departments", h.GetDepartments)
	router.POST("/departments", h.CreateDepartment)
	router.GET("/departments/:id", h.GetDepartment)
	router.PUT("/departments/:id", h.UpdateDepartment)
	router.DELETE("/departments/:id", h.RemoveDepartment)
}

func (h *DepartmentHandler) GetDepartments(c *gin.Context) {
	departments, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, departments)
}

func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id, ok := departmentID(c)
	if !ok {
		return
	}

	department, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, department)
}

func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req models.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	department, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, department)
}

func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id, ok := departmentID(c)
	if !ok {
		return
	}

	var req models.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	department, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, department)
}

func (h *DepartmentHandler) RemoveDepartment(c *gin.Context) {
	id, ok := departmentID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func departmentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid department ID"})
		return 0, false
	}
	return id, true
}
