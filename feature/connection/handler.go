package connection

import (
	"errors"
	"fmt"

	"catalog-manager/core/catalog"
	"catalog-manager/core/logger"
	"catalog-manager/core/utils"
	"catalog-manager/feature/connection/models"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for catalogs and connections.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog and connection routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	catalogs := app.Group("/catalogs")
	catalogs.Post("/merge", h.HandleMerge)
	catalogs.Post("/diff", h.HandleDiff)

	connections := app.Group("/connections")
	connections.Get("/", h.HandleListConnections)
	connections.Get("/:id/catalog", h.HandleGetCatalog)
	connections.Put("/:id/catalog", h.HandleSaveCatalog)
	connections.Get("/:id/snapshots", h.HandleListSnapshots)
	connections.Post("/:id/snapshots", h.HandleUploadSnapshot)
	connections.Post("/:id/refresh", h.HandleRefresh)
}

// HandleMerge merges three catalogs from the request body.
// @Summary Merge Catalogs
// @Description Merges a configured catalog with a new discovery, using the previous discovery as the baseline.
// @Tags catalogs
// @Accept json
// @Produce json
// @Param request body models.MergeRequest true "Catalogs to merge"
// @Success 200 {object} reconcile.ReconcilePlan "Merged catalog and per-stream outcomes"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Malformed Catalog"
// @Router /catalogs/merge [post]
func (h *Handler) HandleMerge(c *fiber.Ctx) error {
	var req models.MergeRequest
	if err := decodeBody(c, &req); err != nil {
		return h.fail(c, err, "Invalid merge request")
	}

	plan, err := h.service.Merge(c.Context(), req)
	if err != nil {
		return h.fail(c, err, "Merge failed")
	}
	return c.JSON(plan)
}

// HandleDiff compares two discoveries from the request body.
// @Summary Diff Catalogs
// @Description Reports stream and field changes between two discoveries. The configured catalog decides which changes are breaking.
// @Tags catalogs
// @Accept json
// @Produce json
// @Param request body models.DiffRequest true "Catalogs to compare"
// @Success 200 {object} reconcile.CatalogDiff "Catalog diff"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Malformed Catalog"
// @Router /catalogs/diff [post]
func (h *Handler) HandleDiff(c *fiber.Ctx) error {
	var req models.DiffRequest
	if err := decodeBody(c, &req); err != nil {
		return h.fail(c, err, "Invalid diff request")
	}

	diff, err := h.service.Diff(c.Context(), req)
	if err != nil {
		return h.fail(c, err, "Diff failed")
	}
	return c.JSON(fiber.Map{
		"transforms": diff.Transforms,
		"breaking":   diff.Breaking(),
	})
}

// HandleListConnections lists stored connections.
// @Summary List Connections
// @Tags connections
// @Produce json
// @Success 200 {array} models.ConnectionSummary "Connections"
// @Failure 503 {object} map[string]string "Store Unavailable"
// @Router /connections [get]
func (h *Handler) HandleListConnections(c *fiber.Ctx) error {
	list, err := h.service.ListConnections(c.Context())
	if err != nil {
		return h.fail(c, err, "Listing connections failed")
	}
	return c.JSON(list)
}

// HandleGetCatalog returns the configured catalog of a connection.
// @Summary Get Configured Catalog
// @Tags connections
// @Produce json
// @Param id path string true "Connection ID"
// @Success 200 {object} models.StoredCatalog "Stored catalog"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /connections/{id}/catalog [get]
func (h *Handler) HandleGetCatalog(c *fiber.Ctx) error {
	stored, err := h.service.GetCatalog(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Loading catalog failed")
	}
	return c.JSON(stored)
}

// HandleSaveCatalog replaces the configured catalog of a connection.
// @Summary Save Configured Catalog
// @Description Stores the configured catalog. Without a baseline_snapshot_id the latest snapshot becomes the baseline.
// @Tags connections
// @Accept json
// @Produce json
// @Param id path string true "Connection ID"
// @Param request body models.SaveCatalogRequest true "Configured catalog"
// @Success 200 {object} models.StoredCatalog "Stored catalog"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Malformed Catalog"
// @Router /connections/{id}/catalog [put]
func (h *Handler) HandleSaveCatalog(c *fiber.Ctx) error {
	var req models.SaveCatalogRequest
	if err := decodeBody(c, &req); err != nil {
		return h.fail(c, err, "Invalid catalog")
	}

	stored, err := h.service.SaveCatalog(c.Context(), c.Params("id"), req)
	if err != nil {
		return h.fail(c, err, "Saving catalog failed")
	}
	return c.JSON(stored)
}

// HandleListSnapshots lists the discovery snapshots of a connection.
// @Summary List Snapshots
// @Tags connections
// @Produce json
// @Param id path string true "Connection ID"
// @Success 200 {array} models.SnapshotInfo "Snapshots, newest first"
// @Router /connections/{id}/snapshots [get]
func (h *Handler) HandleListSnapshots(c *fiber.Ctx) error {
	list, err := h.service.ListSnapshots(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Listing snapshots failed")
	}
	return c.JSON(list)
}

// HandleUploadSnapshot stores a new discovered catalog.
// @Summary Upload Snapshot
// @Tags connections
// @Accept json
// @Produce json
// @Param id path string true "Connection ID"
// @Param request body catalog.Catalog true "Discovered catalog"
// @Success 201 {object} models.SnapshotInfo "Stored snapshot"
// @Failure 422 {object} map[string]string "Malformed Catalog"
// @Router /connections/{id}/snapshots [post]
func (h *Handler) HandleUploadSnapshot(c *fiber.Ctx) error {
	var body catalog.Catalog
	if err := decodeBody(c, &body); err != nil {
		return h.fail(c, err, "Invalid snapshot")
	}

	info, err := h.service.UploadSnapshot(c.Context(), c.Params("id"), &body)
	if err != nil {
		return h.fail(c, err, "Uploading snapshot failed")
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}

// HandleRefresh merges the stored configuration with a discovery snapshot.
// @Summary Refresh Connection Catalog
// @Description Merges the stored catalog with a snapshot (the latest by default). With apply=true the result is stored and the snapshot becomes the baseline.
// @Tags connections
// @Produce json
// @Param id path string true "Connection ID"
// @Param snapshot query string false "Snapshot ID"
// @Param apply query boolean false "Persist the merged catalog"
// @Success 200 {object} models.RefreshResult "Refresh result"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 422 {object} map[string]string "Malformed Catalog"
// @Router /connections/{id}/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	opts := models.RefreshOptions{
		SnapshotID: c.Query("snapshot"),
		Apply:      c.QueryBool("apply"),
	}

	result, err := h.service.Refresh(c.Context(), c.Params("id"), opts)
	if err != nil {
		return h.fail(c, err, "Refresh failed")
	}
	return c.JSON(result)
}

func decodeBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return fmt.Errorf("%w: request body is empty", ErrInvalidRequest)
	}
	if err := json.Unmarshal(c.Body(), out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

// fail maps service errors to HTTP status codes.
func (h *Handler) fail(c *fiber.Ctx, err error, msg string) error {
	status := statusFor(err)
	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	var validationErr *utils.ValidationError
	switch {
	case errors.Is(err, catalog.ErrMalformedCatalog):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &validationErr), errors.Is(err, ErrInvalidRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrConnectionNotFound), errors.Is(err, ErrSnapshotNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
