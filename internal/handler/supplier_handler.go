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

var supplierTypes = map[string]bool{
	model.SupplierTypeWorkshop: true,
	model.SupplierTypeImporter: true,
	model.SupplierTypeMerchant: true,
	model.SupplierTypeNone:     true,
}

// ListSuppliers handles retrieving suppliers with search, type filtering
// and sorting applied in memory from the request query parameters
func ListSuppliers(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing suppliers with filters")
	prometheus.RecordSupplierOperation("list")

	defer prometheus.TrackDBOperation("query")(time.Now())

	var suppliers []model.Supplier
	result := database.GetDB().
		Preload("Domain").
		Where("is_active = ?", true).
		Find(&suppliers)
	if result.Error != nil {
		log.Error("Failed to list suppliers", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve suppliers",
		})
	}

	state := filter.StateFromQuery(c.QueryParams())
	suppliers = filter.SortSuppliers(filter.FilterSuppliers(suppliers, state), state.SortBy)

	log.Info("Suppliers retrieved successfully", zap.Int("count", len(suppliers)))
	return c.JSON(http.StatusOK, suppliers)
}

// GetSupplier handles retrieving a single supplier by ID
func GetSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Getting supplier by ID", zap.String("supplier_id", id))
	prometheus.RecordSupplierOperation("get")

	var supplier model.Supplier
	result := database.GetDB().Preload("Domain").First(&supplier, id)
	if result.Error != nil {
		log.Error("Supplier not found",
			zap.String("supplier_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Supplier not found",
		})
	}

	return c.JSON(http.StatusOK, supplier)
}

// CreateSupplier handles creating a supplier from a multipart form. The
// store logo runs through the single-image pipeline with the 2MB limit.
func CreateSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new supplier")
	prometheus.RecordSupplierOperation("create")

	businessName := c.FormValue("business_name")
	if businessName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "business_name is required"})
	}

	supplierType := c.FormValue("type")
	if supplierType == "" {
		supplierType = model.SupplierTypeNone
	}
	if !supplierTypes[supplierType] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid supplier type"})
	}

	supplier := model.Supplier{
		BusinessName: businessName,
		Description:  c.FormValue("description"),
		Type:         supplierType,
		Address:      c.FormValue("address"),
		Phone:        c.FormValue("phone"),
		IsActive:     true,
	}

	if raw := c.FormValue("domain_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			domainID := uint(id)
			supplier.DomainID = &domainID
		}
	}

	// Run the logo through the single-image pipeline
	recorder := &noticeRecorder{}
	collector := imaging.NewLogoCollector(newRequestSource(c, "logo"), recorder)
	collector.PickFromDevice(c.Request().Context())

	if accepted := collector.Images(); len(accepted) > 0 {
		url, err := storeImage(accepted[0])
		if err != nil {
			log.Error("Failed to store supplier logo", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "Failed to store supplier logo",
			})
		}
		supplier.LogoURL = url
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	result := database.GetDB().Create(&supplier)
	if result.Error != nil {
		log.Error("Failed to create supplier",
			zap.String("business_name", businessName),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create supplier",
		})
	}

	log.Info("Supplier created successfully",
		zap.Uint("id", supplier.ID),
		zap.String("business_name", supplier.BusinessName),
		zap.String("type", supplier.Type))
	return c.JSON(http.StatusCreated, echo.Map{
		"supplier": supplier,
		"notices":  recorder.Notices(),
	})
}
