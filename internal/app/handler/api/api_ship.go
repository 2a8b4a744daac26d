package api

import (
	"context"
	"io"
	"net/http"

	"maritime_registry/internal/app/ds"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const maxImageSize = 10 << 20

// ImageStore is the object storage used for ship photos.
type ImageStore interface {
	UploadImage(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error)
	RemoveImage(ctx context.Context, objectName string) error
}

type ShipHandler struct {
	Repository interface {
		GetShips(ctx context.Context) ([]ds.ShipView, error)
		GetShip(ctx context.Context, imo int) (ds.ShipView, error)
		CreateShip(ctx context.Context, ship ds.Ship) (ds.ShipView, error)
		UpdateShip(ctx context.Context, imo int, ship ds.Ship) (ds.ShipView, error)
		DeleteShip(ctx context.Context, imo int) error
		GetShipStats(ctx context.Context) (ds.ShipStats, error)
		ShipExists(ctx context.Context, imo int) (bool, error)
		SetShipPhoto(ctx context.Context, imo int, objectName string) (string, error)
	}
	// Images is nil when object storage is not configured.
	Images ImageStore
}

// GetShipsAPI - GET /api/ships
// @Summary List ships with resolved type, flag, owner and port names
// @Tags ships
// @Produce json
// @Success 200 {array} ds.ShipView
// @Router /api/ships [get]
func (h *ShipHandler) GetShipsAPI(c *gin.Context) {
	ships, err := h.Repository.GetShips(c.Request.Context())
	if err != nil {
		respondError(c, "GetShipsAPI", err)
		return
	}
	c.JSON(http.StatusOK, ships)
}

// GetShipAPI - GET /api/ships/:imo
// @Summary Get ship
// @Tags ships
// @Produce json
// @Param imo path int true "IMO number"
// @Success 200 {object} ds.ShipView
// @Failure 404 {object} ErrorResponse
// @Router /api/ships/{imo} [get]
func (h *ShipHandler) GetShipAPI(c *gin.Context) {
	imo, ok := intParam(c, "imo")
	if !ok {
		return
	}
	ship, err := h.Repository.GetShip(c.Request.Context(), imo)
	if err != nil {
		respondError(c, "GetShipAPI", err)
		return
	}
	c.JSON(http.StatusOK, ship)
}

// CreateShipAPI - POST /api/ships
// @Summary Register ship
// @Tags ships
// @Accept json
// @Produce json
// @Param ship body ds.Ship true "Ship"
// @Success 201 {object} ds.ShipView
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/ships [post]
func (h *ShipHandler) CreateShipAPI(c *gin.Context) {
	var ship ds.Ship
	if err := c.ShouldBindJSON(&ship); err != nil {
		badRequest(c, err.Error())
		return
	}
	created, err := h.Repository.CreateShip(c.Request.Context(), ship)
	if err != nil {
		respondError(c, "CreateShipAPI", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateShipAPI - PUT /api/ships/:imo
// @Summary Update ship
// @Tags ships
// @Accept json
// @Produce json
// @Param imo path int true "IMO number"
// @Param ship body ds.Ship true "Ship, Imo must match the path"
// @Success 200 {object} ds.ShipView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/ships/{imo} [put]
func (h *ShipHandler) UpdateShipAPI(c *gin.Context) {
	imo, ok := intParam(c, "imo")
	if !ok {
		return
	}
	var ship ds.Ship
	if err := c.ShouldBindJSON(&ship); err != nil {
		badRequest(c, err.Error())
		return
	}
	updated, err := h.Repository.UpdateShip(c.Request.Context(), imo, ship)
	if err != nil {
		respondError(c, "UpdateShipAPI", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteShipAPI - DELETE /api/ships/:imo
// @Summary Delete ship without dependent records
// @Tags ships
// @Param imo path int true "IMO number"
// @Success 204
// @Failure 400 {object} ErrorResponse "ship has certificates, inspections or requests"
// @Failure 404 {object} ErrorResponse
// @Router /api/ships/{imo} [delete]
func (h *ShipHandler) DeleteShipAPI(c *gin.Context) {
	imo, ok := intParam(c, "imo")
	if !ok {
		return
	}
	if err := h.Repository.DeleteShip(c.Request.Context(), imo); err != nil {
		respondError(c, "DeleteShipAPI", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetShipStatsAPI - GET /api/ships/stats
// @Summary Ship counts by status
// @Tags ships
// @Produce json
// @Success 200 {object} ds.ShipStats
// @Router /api/ships/stats [get]
func (h *ShipHandler) GetShipStatsAPI(c *gin.Context) {
	stats, err := h.Repository.GetShipStats(c.Request.Context())
	if err != nil {
		respondError(c, "GetShipStatsAPI", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AddShipImageAPI - POST /api/ships/:imo/image
// @Summary Upload ship photo
// @Tags ships
// @Accept multipart/form-data
// @Produce json
// @Param imo path int true "IMO number"
// @Param file formData file true "Image"
// @Success 200 {object} object "Imo, Photo_Url, message"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/ships/{imo}/image [post]
func (h *ShipHandler) AddShipImageAPI(c *gin.Context) {
	imo, ok := intParam(c, "imo")
	if !ok {
		return
	}
	if h.Images == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Message: "Image storage not available"})
		return
	}

	ctx := c.Request.Context()
	found, err := h.Repository.ShipExists(ctx, imo)
	if err != nil {
		respondError(c, "AddShipImageAPI", err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Ship not found"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageSize)
	if err := c.Request.ParseMultipartForm(maxImageSize); err != nil {
		badRequest(c, "Failed to parse form data")
		return
	}
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		file, header, err = c.Request.FormFile("image")
		if err != nil {
			badRequest(c, "No image file provided")
			return
		}
	}
	defer file.Close()

	objectName, err := h.Images.UploadImage(ctx, header.Filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, "AddShipImageAPI", err)
		return
	}

	previous, err := h.Repository.SetShipPhoto(ctx, imo, objectName)
	if err != nil {
		if rmErr := h.Images.RemoveImage(ctx, objectName); rmErr != nil {
			logrus.Warnf("AddShipImageAPI: cleanup of %s failed: %v", objectName, rmErr)
		}
		respondError(c, "AddShipImageAPI", err)
		return
	}
	if previous != "" {
		if err := h.Images.RemoveImage(ctx, previous); err != nil {
			logrus.Warnf("AddShipImageAPI: removing previous image %s failed: %v", previous, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"Imo":       imo,
		"Photo_Url": objectName,
		"message":   "Image uploaded successfully",
	})
}
