package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teot59/airline-manager-JSON-to-excel/internal/domain/models"
	"github.com/teot59/airline-manager-JSON-to-excel/internal/report"
	"github.com/teot59/airline-manager-JSON-to-excel/internal/service/export"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// Exporter is the export operation exposed over HTTP.
type Exporter interface {
	ExportJSON(ctx context.Context, data []byte, reference, mode string) (models.ExportResponse, error)
}

// HistoryReader lists past exports.
type HistoryReader interface {
	RecentExports(ctx context.Context, limit int) ([]models.ExportRecord, error)
}

// ExportHandler handles workbook export HTTP requests.
type ExportHandler struct {
	svc         Exporter
	history     HistoryReader
	defaultMode string
	outputRoot  string
	logger      *zap.Logger
}

// NewExportHandler constructs the HTTP handler adapter. history may be nil.
// Requested reference paths must resolve inside outputRoot.
func NewExportHandler(svc Exporter, history HistoryReader, defaultMode, outputRoot string, logger *zap.Logger) *ExportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportHandler{
		svc:         svc,
		history:     history,
		defaultMode: defaultMode,
		outputRoot:  outputRoot,
		logger:      logger,
	}
}

// Export builds a workbook from the posted batch and returns its path.
func (h *ExportHandler) Export(c *gin.Context) {
	var req models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid export payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = h.defaultMode
	}

	var resp models.ExportResponse
	reference, err := report.Confine(h.outputRoot, req.ReferencePath)
	if err == nil {
		resp, err = h.svc.ExportJSON(c.Request.Context(), req.Routes, reference, mode)
	}
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, export.ErrInvalidInput) || errors.Is(err, report.ErrInvalidReference) {
			status = http.StatusBadRequest
		}
		h.logger.Error("export failed", zap.String("mode", mode), zap.Int("status", status), zap.Error(err))
		c.JSON(status, gin.H{"error": "Error creating Excel file: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Schema returns the column headers the given mode exports.
func (h *ExportHandler) Schema(c *gin.Context) {
	schema := report.Resolve(c.Param("mode"))
	c.JSON(http.StatusOK, gin.H{"mode": schema.Mode, "columns": schema.Headers()})
}

// History lists the most recent exports.
func (h *ExportHandler) History(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "export history disabled"})
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	records, err := h.history.RecentExports(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("failed loading export history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load export history"})
		return
	}

	c.JSON(http.StatusOK, records)
}
