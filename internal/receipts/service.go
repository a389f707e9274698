package receipts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ers220/component-compass/pkg/config"
	pkgerrors "github.com/ers220/component-compass/pkg/errors"
	"github.com/ers220/component-compass/pkg/logger"
)

const (
	collectionWindow = 72 * time.Hour
	dateLayout       = "January 2, 2006"
	stampLayout      = "20060102_150405"
)

// Renderer writes a receipt document to disk in one format.
type Renderer interface {
	Render(doc Document, path string) error
	Extension() string
}

// Service turns a cart into a dated reservation receipt on disk.
type Service interface {
	Export(ctx context.Context, student StudentInfo, lines []Line) (*ExportResult, error)
}

type service struct {
	dir      string
	primary  Renderer
	fallback Renderer
	logg     *logger.Logger
	now      func() time.Time
}

// ServiceParams bundles the dependencies required to build a receipts service.
type ServiceParams struct {
	Config config.ReceiptsConfig
	Logger *logger.Logger
	Now    func() time.Time
}

// NewService constructs a receipts service. PDF is the primary format; when a
// PDF cannot be produced the receipt is written as HTML instead.
func NewService(params ServiceParams) (Service, error) {
	if params.Config.Dir == "" {
		return nil, fmt.Errorf("receipts directory is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}

	var primary, fallback Renderer
	switch params.Config.Format {
	case "", "pdf":
		primary, fallback = &PDFRenderer{}, &HTMLRenderer{}
	case "html":
		primary, fallback = &HTMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported receipt format %q", params.Config.Format)
	}

	return &service{
		dir:      params.Config.Dir,
		primary:  primary,
		fallback: fallback,
		logg:     params.Logger,
		now:      now,
	}, nil
}

func (s *service) Export(ctx context.Context, student StudentInfo, lines []Line) (*ExportResult, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create receipts directory")
	}

	now := s.now()
	doc := Document{
		StudentName:        student.FullName,
		StudentEmail:       student.Email,
		ReservationDate:    now.Format(dateLayout),
		CollectionDeadline: now.Add(collectionWindow).Format(dateLayout),
		Lines:              lines,
		Total:              totalCost(lines),
	}

	stem := "reservation_" + now.Format(stampLayout)

	filename := stem + s.primary.Extension()
	err := s.primary.Render(doc, filepath.Join(s.dir, filename))
	if err == nil {
		return &ExportResult{Filename: filename, Format: formatName(s.primary)}, nil
	}
	if s.fallback == nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render receipt")
	}

	if s.logg != nil {
		s.logg.Warn(ctx, fmt.Sprintf("pdf render failed, writing html receipt: %v", err))
	}
	filename = stem + s.fallback.Extension()
	if err := s.fallback.Render(doc, filepath.Join(s.dir, filename)); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render fallback receipt")
	}
	return &ExportResult{Filename: filename, Format: formatName(s.fallback)}, nil
}

func totalCost(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price)
	}
	return total
}

func formatName(r Renderer) string {
	if r.Extension() == ".pdf" {
		return "PDF"
	}
	return "HTML"
}
