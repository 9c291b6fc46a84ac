package handler

import (
	"net/http"
	"strconv"
	"time"

	"storefront-service/internal/filter"
	"storefront-service/internal/imaging"
	"storefront-service/internal/model"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListProducts handles retrieving products with filtering and sorting
// applied in memory from the request query parameters
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing products with filters")
	prometheus.RecordProductOperation("list")

	defer prometheus.TrackDBOperation("query")(time.Now())

	var products []model.Product
	result := database.GetDB().
		Preload("Images").
		Where("is_active = ?", true).
		Find(&products)
	if result.Error != nil {
		log.Error("Failed to list products", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve products",
		})
	}

	state := filter.StateFromQuery(c.QueryParams())
	products = filter.SortProducts(filter.FilterProducts(products, state), state.SortBy)

	log.Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles retrieving a single product by ID
func GetProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Getting product by ID", zap.String("product_id", id))
	prometheus.RecordProductOperation("get")

	var product model.Product
	result := database.GetDB().Preload("Images").First(&product, id)
	if result.Error != nil {
		log.Error("Product not found",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles creating a new product from a multipart form.
// Attached images run through the acquisition pipeline; rejected files
// surface as notices in the response, never as request errors.
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new product")
	prometheus.RecordProductOperation("create")

	name := c.FormValue("name")
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "a non-negative price is required"})
	}

	quantity, _ := strconv.Atoi(c.FormValue("quantity"))
	if quantity < 0 {
		quantity = 0
	}

	supplierID, err := strconv.ParseUint(c.FormValue("supplier_id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "supplier_id is required"})
	}

	product := model.Product{
		Name:        name,
		Description: c.FormValue("description"),
		Price:       price,
		Quantity:    quantity,
		SupplierID:  uint(supplierID),
		IsActive:    true,
	}

	if raw := c.FormValue("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			categoryID := uint(id)
			product.CategoryID = &categoryID
		}
	}

	// Run attached images through the acquisition pipeline
	recorder := &noticeRecorder{}
	collector := imaging.NewCollector(
		newRequestSource(c, "images"), recorder,
		uploadCfg.MaxImages, uploadCfg.MaxImageSize,
	)
	collector.PickFromDevice(c.Request().Context())

	defer prometheus.TrackDBOperation("insert")(time.Now())

	result := database.GetDB().Create(&product)
	if result.Error != nil {
		log.Error("Failed to create product",
			zap.String("name", name),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create product",
		})
	}

	images, err := storeProductImages(product.ID, collector.Images())
	if err != nil {
		log.Error("Failed to store product images", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to store product images",
		})
	}
	if len(images) > 0 {
		if err := database.GetDB().Create(&images).Error; err != nil {
			log.Error("Failed to save product images", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "Failed to save product images",
			})
		}
		product.Images = images
	}

	log.Info("Product created successfully",
		zap.Uint("id", product.ID),
		zap.String("name", product.Name),
		zap.Int("images", len(images)))
	return c.JSON(http.StatusCreated, echo.Map{
		"product": product,
		"notices": recorder.Notices(),
	})
}

// UpdateProduct handles updating a product. When the form carries new
// images the existing gallery is replaced by the accepted set.
func UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Updating product", zap.String("product_id", id))
	prometheus.RecordProductOperation("update")

	var product model.Product
	if err := database.GetDB().Preload("Images").First(&product, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}

	if name := c.FormValue("name"); name != "" {
		product.Name = name
	}
	if desc := c.FormValue("description"); desc != "" {
		product.Description = desc
	}
	if raw := c.FormValue("price"); raw != "" {
		if price, err := strconv.ParseFloat(raw, 64); err == nil && price >= 0 {
			product.Price = price
		}
	}
	if raw := c.FormValue("quantity"); raw != "" {
		if quantity, err := strconv.Atoi(raw); err == nil && quantity >= 0 {
			product.Quantity = quantity
		}
	}
	if raw := c.FormValue("category_id"); raw != "" {
		if cid, err := strconv.ParseUint(raw, 10, 32); err == nil {
			categoryID := uint(cid)
			product.CategoryID = &categoryID
		}
	}

	recorder := &noticeRecorder{}
	collector := imaging.NewCollector(
		newRequestSource(c, "images"), recorder,
		uploadCfg.MaxImages, uploadCfg.MaxImageSize,
	)
	collector.PickFromDevice(c.Request().Context())

	defer prometheus.TrackDBOperation("update")(time.Now())

	if accepted := collector.Images(); len(accepted) > 0 {
		images, err := storeProductImages(product.ID, accepted)
		if err != nil {
			log.Error("Failed to store product images", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "Failed to store product images",
			})
		}
		if err := database.GetDB().
			Where("product_id = ?", product.ID).
			Delete(&model.ProductImage{}).Error; err != nil {
			log.Error("Failed to replace product images", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "Failed to replace product images",
			})
		}
		if err := database.GetDB().Create(&images).Error; err != nil {
			log.Error("Failed to save product images", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "Failed to save product images",
			})
		}
		product.Images = images
	}

	if err := database.GetDB().Save(&product).Error; err != nil {
		log.Error("Failed to update product", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update product",
		})
	}

	log.Info("Product updated successfully", zap.Uint("id", product.ID))
	return c.JSON(http.StatusOK, echo.Map{
		"product": product,
		"notices": recorder.Notices(),
	})
}

// DeleteProduct handles deleting a product
func DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Deleting product", zap.String("product_id", id))
	prometheus.RecordProductOperation("delete")

	var product model.Product
	if err := database.GetDB().First(&product, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())

	if err := database.GetDB().Delete(&product).Error; err != nil {
		log.Error("Failed to delete product", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete product",
		})
	}

	return c.NoContent(http.StatusNoContent)
}
