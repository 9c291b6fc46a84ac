package handler

import (
	"net/http"
	"time"

	"storefront-service/internal/model"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CategoryRequest defines the structure for category creation requests
type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListCategories handles retrieving all product categories
func ListCategories(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCategoryOperation("list")

	defer prometheus.TrackDBOperation("query")(time.Now())

	var categories []model.ProductCategory
	result := database.GetDB().Order("name").Find(&categories)
	if result.Error != nil {
		log.Error("Failed to list categories", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve categories",
		})
	}

	return c.JSON(http.StatusOK, categories)
}

// CreateCategory handles creating a new product category
func CreateCategory(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new category")
	prometheus.RecordCategoryOperation("create")

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	// Check if category already exists
	var count int64
	database.GetDB().Model(&model.ProductCategory{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		log.Warn("Category already exists", zap.String("name", req.Name))
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Category with this name already exists",
		})
	}

	category := model.ProductCategory{Name: req.Name}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := database.GetDB().Create(&category).Error; err != nil {
		log.Error("Failed to create category",
			zap.String("name", req.Name),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create category",
		})
	}

	log.Info("Category created successfully",
		zap.Uint("id", category.ID),
		zap.String("name", category.Name))
	return c.JSON(http.StatusCreated, category)
}
