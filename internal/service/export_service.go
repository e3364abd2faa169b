package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kosherspots/kosherspots-api/internal/models"
	appErrors "github.com/kosherspots/kosherspots-api/pkg/errors"
	"github.com/kosherspots/kosherspots-api/pkg/export"
)

// ExportFormat names the supported directory export encodings.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

var exportHeaders = []string{"Name", "Address", "City", "State", "Agency", "Category", "Hours", "Rating"}

type exportRestaurantLister interface {
	List(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, int, error)
}

// ExportResult carries rendered bytes plus response metadata.
type ExportResult struct {
	ContentType string
	Filename    string
	Data        []byte
}

// ExportService renders the directory as a downloadable document.
type ExportService struct {
	repo    exportRestaurantLister
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	maxRows int
	logger  *zap.Logger
}

// NewExportService constructs an export service.
func NewExportService(repo exportRestaurantLister, maxRows int, logger *zap.Logger) *ExportService {
	if maxRows <= 0 {
		maxRows = 5000
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		repo:    repo,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		maxRows: maxRows,
		logger:  logger,
	}
}

// Render produces the directory in the requested format.
func (s *ExportService) Render(ctx context.Context, format ExportFormat, filter models.RestaurantFilter) (*ExportResult, error) {
	filter.Page = 1
	filter.PageSize = s.maxRows

	restaurants, _, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load restaurants for export")
	}

	dataset := export.Dataset{Headers: exportHeaders, Rows: make([]map[string]string, 0, len(restaurants))}
	for _, r := range restaurants {
		dataset.Rows = append(dataset.Rows, exportRow(r))
	}

	switch format {
	case ExportCSV:
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "csv export failed")
		}
		return &ExportResult{ContentType: "text/csv", Filename: "restaurants.csv", Data: data}, nil
	case ExportPDF:
		data, err := s.pdf.Render(dataset, "Kosher Restaurant Directory")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "pdf export failed")
		}
		return &ExportResult{ContentType: "application/pdf", Filename: "restaurants.pdf", Data: data}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func exportRow(r models.Restaurant) map[string]string {
	hoursText := ""
	if r.HoursOpen != nil {
		hoursText = strings.ReplaceAll(*r.HoursOpen, "\n", "; ")
	}
	rating := ""
	if r.GoogleRating != nil {
		rating = fmt.Sprintf("%.1f", *r.GoogleRating)
	}
	return map[string]string{
		"Name":     r.Name,
		"Address":  r.Address,
		"City":     r.City,
		"State":    r.State,
		"Agency":   r.CertifyingAgency,
		"Category": string(r.KosherCategory),
		"Hours":    hoursText,
		"Rating":   rating,
	}
}
