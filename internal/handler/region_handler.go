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

// ListWilayas handles retrieving all delivery provinces
func ListWilayas(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())

	var wilayas []model.Wilaya
	result := database.GetDB().Order("code").Find(&wilayas)
	if result.Error != nil {
		log.Error("Failed to list wilayas", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve wilayas",
		})
	}

	return c.JSON(http.StatusOK, wilayas)
}

// ListCommunes handles retrieving the communes of a wilaya
func ListCommunes(c echo.Context) error {
	log := logger.FromContext(c)
	wilayaID := c.Param("id")

	defer prometheus.TrackDBOperation("query")(time.Now())

	var communes []model.Commune
	result := database.GetDB().
		Where("wilaya_id = ?", wilayaID).
		Order("name").
		Find(&communes)
	if result.Error != nil {
		log.Error("Failed to list communes",
			zap.String("wilaya_id", wilayaID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve communes",
		})
	}

	return c.JSON(http.StatusOK, communes)
}
