package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-reporter/errors"
	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
	"github.com/johnquangdev/meeting-reporter/internal/infrastructure/render"
)

// Service generates a report file for a meeting and returns its path.
type Service interface {
	GenerateReport(ctx context.Context, m *entities.Meeting, kind entities.ReportKind, format entities.OutputFormat, intervalMinutes int) (string, error)
}

// DocumentRenderer writes an assembled report document to a file.
type DocumentRenderer interface {
	Render(doc entities.ReportDocument, path string) error
}

type reportService struct {
	assembler  *Assembler
	pdf        DocumentRenderer
	docx       DocumentRenderer
	reportsDir string
	logger     *zap.Logger
}

// NewService constructs the report generation service.
func NewService(assembler *Assembler, pdf, docx DocumentRenderer, reportsDir string, logger *zap.Logger) Service {
	return &reportService{
		assembler:  assembler,
		pdf:        pdf,
		docx:       docx,
		reportsDir: reportsDir,
		logger:     logger,
	}
}

// GenerateReport dispatches on (kind, format), assembles the section list,
// renders it and returns the output path. Each request is handled start to
// finish with sequential summarization calls.
func (s *reportService) GenerateReport(ctx context.Context, m *entities.Meeting, kind entities.ReportKind, format entities.OutputFormat, intervalMinutes int) (string, error) {
	if err := os.MkdirAll(s.reportsDir, 0o755); err != nil {
		return "", errors.ErrReportGenerationFailed(err)
	}

	var (
		doc       entities.ReportDocument
		chartPath string
	)

	switch kind {
	case entities.ReportKindNormal:
		doc = s.assembler.BuildNormal(ctx, m)
	case entities.ReportKindSentiment:
		doc, chartPath = s.assembler.BuildSentiment(m)
	case entities.ReportKindSpeakerRanking:
		doc = s.assembler.BuildSpeakerRanking(ctx, m)
	case entities.ReportKindInterval:
		doc = s.assembler.BuildInterval(ctx, m, intervalMinutes)
	default:
		return "", errors.ErrInvalidArgument(fmt.Sprintf("invalid report type: %s", kind))
	}

	if chartPath != "" {
		// Chart PNG only exists to be embedded; drop it once the document
		// is built.
		defer os.Remove(chartPath)
	}

	var renderer DocumentRenderer
	switch format {
	case entities.FormatPDF:
		renderer = s.pdf
	case entities.FormatDOCX:
		renderer = s.docx
	default:
		return "", errors.ErrInvalidArgument(fmt.Sprintf("invalid report format: %s", format))
	}

	path := filepath.Join(s.reportsDir, render.OutputFilename(m.Title, kind, format))
	if err := renderer.Render(doc, path); err != nil {
		return "", errors.ErrReportExportFailed(string(format), err)
	}

	if s.logger != nil {
		s.logger.Info("report.generated",
			zap.String("kind", string(kind)),
			zap.String("format", string(format)),
			zap.String("path", path),
		)
	}
	return path, nil
}
