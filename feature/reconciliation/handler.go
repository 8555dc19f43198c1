package reconciliation

import (
	"errors"

	"sales-reconciler/core/logger"
	"sales-reconciler/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ArchiveHeader carries the object name of an archived report.
const ArchiveHeader = "X-Report-Object"

// Handler handles HTTP requests for reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconciliation")
	group.Get("/", h.HandleVerify)
	group.Get("/schema", h.HandleSchema)
	group.Get("/archives", h.HandleListArchives)
	group.Delete("/cache", h.HandleInvalidateCache)
}

// HandleVerify reconciles sales against the stock ledger.
// @Summary Verify Sales Against Stock
// @Description Cross-checks sales line items against stock ledger sold counts and reports every discrepancy.
// @Tags reconciliation
// @Produce json
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD or RFC 3339)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD or RFC 3339)"
// @Param archive query bool false "Upload the report to object storage"
// @Success 200 {object} reconcile.Report "Reconciliation Report"
// @Failure 400 {object} map[string]string "Invalid Date Range"
// @Failure 500 {object} map[string]string "Archive Failed"
// @Failure 503 {object} map[string]string "Database Unavailable"
// @Router /reconciliation [get]
func (h *Handler) HandleVerify(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	rng, err := reconcile.ParseDateRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	report, err := h.service.Verify(c.Context(), rng)
	if err != nil {
		l.Error("Reconciliation failed", zap.Error(err))
		if errors.Is(err, ErrSourceUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": ErrSourceUnavailable.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if c.QueryBool("archive") {
		object, err := h.service.Archive(c.Context(), report)
		if err != nil {
			l.Error("Report archive failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to archive report",
			})
		}
		c.Set(ArchiveHeader, object)
	}

	return c.JSON(report)
}

// HandleSchema reports whether the database exposes the required columns.
// @Summary Check Schema
// @Description Verifies the sales and stock_ledgers tables expose every column reconciliation reads.
// @Tags reconciliation
// @Produce json
// @Success 200 {object} SchemaReport "Schema Valid"
// @Failure 409 {object} SchemaReport "Columns Missing"
// @Failure 503 {object} map[string]string "Database Unavailable"
// @Router /reconciliation/schema [get]
func (h *Handler) HandleSchema(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": ErrSourceUnavailable.Error(),
		})
	}
	if !report.Valid {
		return c.Status(fiber.StatusConflict).JSON(report)
	}
	return c.JSON(report)
}

// HandleListArchives lists archived reports.
// @Summary List Archived Reports
// @Description Lists reports previously uploaded with archive=true, newest first.
// @Tags reconciliation
// @Produce json
// @Success 200 {array} ArchivedReport "Archived Reports"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconciliation/archives [get]
func (h *Handler) HandleListArchives(c *fiber.Ctx) error {
	reports, err := h.service.ListArchives(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Listing archives failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(reports)
}

// HandleInvalidateCache drops cached reports.
// @Summary Invalidate Report Cache
// @Description Drops the cached report for the given range, or every cached report when no range is given.
// @Tags reconciliation
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD or RFC 3339)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD or RFC 3339)"
// @Success 204 "Cache Invalidated"
// @Failure 400 {object} map[string]string "Invalid Date Range"
// @Router /reconciliation/cache [delete]
func (h *Handler) HandleInvalidateCache(c *fiber.Ctx) error {
	rng, err := reconcile.ParseDateRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	h.service.InvalidateCache(rng)
	return c.SendStatus(fiber.StatusNoContent)
}
