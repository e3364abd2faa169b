package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kosherspots/kosherspots-api/internal/models"
	"github.com/kosherspots/kosherspots-api/internal/service"
	appErrors "github.com/kosherspots/kosherspots-api/pkg/errors"
	"github.com/kosherspots/kosherspots-api/pkg/response"
)

type directoryExporter interface {
	Render(ctx context.Context, format service.ExportFormat, filter models.RestaurantFilter) (*service.ExportResult, error)
}

// ExportHandler serves directory downloads.
type ExportHandler struct {
	export directoryExporter
}

// NewExportHandler constructs the handler.
func NewExportHandler(export directoryExporter) *ExportHandler {
	return &ExportHandler{export: export}
}

// Restaurants godoc
// @Summary Export the directory
// @Tags Export
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Param city query string false "City filter"
// @Param state query string false "State filter"
// @Success 200 {file} binary
// @Router /export/restaurants [get]
func (h *ExportHandler) Restaurants(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))
	if format != service.ExportCSV && format != service.ExportPDF {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
		return
	}

	active := true
	filter := models.RestaurantFilter{
		City:   c.Query("city"),
		State:  c.Query("state"),
		Active: &active,
	}

	result, err := h.export.Render(c.Request.Context(), format, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
