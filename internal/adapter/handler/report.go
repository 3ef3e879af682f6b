package handler

import (
	"path/filepath"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-reporter/errors"
	dto "github.com/johnquangdev/meeting-reporter/internal/adapter/dto/report"
	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
	reportuse "github.com/johnquangdev/meeting-reporter/internal/usecase/report"
)

// defaultIntervalMinutes is the window size used when the request omits
// interval_minutes.
const defaultIntervalMinutes = 5

// Report handles report generation endpoints
type Report struct {
	svc    reportuse.Service
	logger *zap.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(svc reportuse.Service, logger *zap.Logger) *Report {
	return &Report{svc: svc, logger: logger}
}

// Generate builds a meeting report and returns it as a file attachment
// @Summary      Generate meeting report
// @Description  Summarizes the supplied transcript and renders a report document
// @Tags         Report
// @Accept       json
// @Produce      application/pdf
// @Param        request  body      report.GenerateReportRequest  true  "Meeting data and report selection"
// @Success      200      {file}    binary                        "Rendered report document"
// @Failure      400      {object}  map[string]interface{}        "Missing fields or unknown report/format combination"
// @Failure      500      {object}  map[string]interface{}        "Report generation failed"
// @Router       /report [post]
func (h *Report) Generate(c echo.Context) error {
	var req dto.GenerateReportRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(validationMessage(err)))
	}

	kind, err := entities.ParseReportKind(req.ReportType)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	format, err := entities.ParseOutputFormat(req.ReportFormat)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	interval := req.IntervalMinutes
	if interval == 0 {
		interval = defaultIntervalMinutes
	}
	if interval < 1 {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("interval_minutes must be at least 1"))
	}

	meeting, err := req.MeetingData.ToMeeting()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	path, err := h.svc.GenerateReport(c.Request().Context(), meeting, kind, format, interval)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if h.logger != nil {
		h.logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("report", filepath.Base(path)),
		)
	}

	c.Response().Header().Set(echo.HeaderContentType, format.MIMEType())
	return c.Attachment(path, filepath.Base(path))
}
