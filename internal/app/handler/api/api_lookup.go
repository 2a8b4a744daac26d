package api

import (
	"context"
	"net/http"

	"maritime_registry/internal/app/ds"

	"github.com/gin-gonic/gin"
)

type LookupHandler struct {
	Repository interface {
		GetFlags(ctx context.Context) ([]ds.Flag, error)
		GetFlag(ctx context.Context, id int) (ds.Flag, error)
		GetFlagByName(ctx context.Context, name string) (ds.Flag, error)
		CreateFlag(ctx context.Context, country string) (ds.Flag, bool, error)

		GetPorts(ctx context.Context) ([]ds.Port, error)
		GetPort(ctx context.Context, id int) (ds.Port, error)
		GetPortByName(ctx context.Context, name string) (ds.Port, error)
		CreatePort(ctx context.Context, name, country string) (ds.Port, bool, error)

		GetShipTypes(ctx context.Context) ([]ds.ShipType, error)
		GetShipType(ctx context.Context, id int) (ds.ShipType, error)
		GetShipTypeByName(ctx context.Context, name string) (ds.ShipType, error)
		CreateShipType(ctx context.Context, name string) (ds.ShipType, bool, error)
	}
}

func createdOrOK(created bool) int {
	if created {
		return http.StatusCreated
	}
	return http.StatusOK
}

// @Summary List flags
// @Tags lookups
// @Produce json
// @Success 200 {array} ds.Flag
// @Failure 500 {object} ErrorResponse
// @Router /api/pavillon [get]
func (h *LookupHandler) GetFlagsAPI(c *gin.Context) {
	flags, err := h.Repository.GetFlags(c.Request.Context())
	if err != nil {
		respondError(c, "GetFlagsAPI", err)
		return
	}
	c.JSON(http.StatusOK, flags)
}

// @Summary Get flag by id
// @Tags lookups
// @Produce json
// @Param id path int true "Flag id"
// @Success 200 {object} ds.Flag
// @Failure 404 {object} ErrorResponse
// @Router /api/pavillon/{id} [get]
func (h *LookupHandler) GetFlagAPI(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	flag, err := h.Repository.GetFlag(c.Request.Context(), id)
	if err != nil {
		respondError(c, "GetFlagAPI", err)
		return
	}
	c.JSON(http.StatusOK, flag)
}

// @Summary Get flag by country name (case insensitive)
// @Tags lookups
// @Produce json
// @Param name path string true "Country"
// @Success 200 {object} ds.Flag
// @Failure 404 {object} ErrorResponse
// @Router /api/pavillon/byName/{name} [get]
func (h *LookupHandler) GetFlagByNameAPI(c *gin.Context) {
	flag, err := h.Repository.GetFlagByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, "GetFlagByNameAPI", err)
		return
	}
	c.JSON(http.StatusOK, flag)
}

// @Summary Create flag, or return the existing one
// @Tags lookups
// @Accept json
// @Produce json
// @Param flag body ds.Flag true "Flag"
// @Success 201 {object} ds.Flag
// @Success 200 {object} ds.Flag "already registered"
// @Failure 400 {object} ErrorResponse
// @Router /api/pavillon [post]
func (h *LookupHandler) CreateFlagAPI(c *gin.Context) {
	var body ds.Flag
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err.Error())
		return
	}
	flag, created, err := h.Repository.CreateFlag(c.Request.Context(), body.Country)
	if err != nil {
		respondError(c, "CreateFlagAPI", err)
		return
	}
	c.JSON(createdOrOK(created), flag)
}

// @Summary List ports
// @Tags lookups
// @Produce json
// @Success 200 {array} ds.Port
// @Router /api/port [get]
func (h *LookupHandler) GetPortsAPI(c *gin.Context) {
	ports, err := h.Repository.GetPorts(c.Request.Context())
	if err != nil {
		respondError(c, "GetPortsAPI", err)
		return
	}
	c.JSON(http.StatusOK, ports)
}

// @Summary Get port by id
// @Tags lookups
// @Produce json
// @Param id path int true "Port id"
// @Success 200 {object} ds.Port
// @Failure 404 {object} ErrorResponse
// @Router /api/port/{id} [get]
func (h *LookupHandler) GetPortAPI(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	port, err := h.Repository.GetPort(c.Request.Context(), id)
	if err != nil {
		respondError(c, "GetPortAPI", err)
		return
	}
	c.JSON(http.StatusOK, port)
}

// @Summary Get the first port with the given name
// @Tags lookups
// @Produce json
// @Param name path string true "Port name"
// @Success 200 {object} ds.Port
// @Failure 404 {object} ErrorResponse
// @Router /api/port/byName/{name} [get]
func (h *LookupHandler) GetPortByNameAPI(c *gin.Context) {
	port, err := h.Repository.GetPortByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, "GetPortByNameAPI", err)
		return
	}
	c.JSON(http.StatusOK, port)
}

// @Summary Create port, or return the existing one for the same name and country
// @Tags lookups
// @Accept json
// @Produce json
// @Param port body ds.Port true "Port"
// @Success 201 {object} ds.Port
// @Success 200 {object} ds.Port "already registered"
// @Failure 400 {object} ErrorResponse
// @Router /api/port [post]
func (h *LookupHandler) CreatePortAPI(c *gin.Context) {
	var body ds.Port
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err.Error())
		return
	}
	port, created, err := h.Repository.CreatePort(c.Request.Context(), body.Name, body.Country)
	if err != nil {
		respondError(c, "CreatePortAPI", err)
		return
	}
	c.JSON(createdOrOK(created), port)
}

// @Summary List ship types
// @Tags lookups
// @Produce json
// @Success 200 {array} ds.ShipType
// @Router /api/typenavire [get]
func (h *LookupHandler) GetShipTypesAPI(c *gin.Context) {
	types, err := h.Repository.GetShipTypes(c.Request.Context())
	if err != nil {
		respondError(c, "GetShipTypesAPI", err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// @Summary Get ship type by id
// @Tags lookups
// @Produce json
// @Param id path int true "Ship type id"
// @Success 200 {object} ds.ShipType
// @Failure 404 {object} ErrorResponse
// @Router /api/typenavire/{id} [get]
func (h *LookupHandler) GetShipTypeAPI(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	shipType, err := h.Repository.GetShipType(c.Request.Context(), id)
	if err != nil {
		respondError(c, "GetShipTypeAPI", err)
		return
	}
	c.JSON(http.StatusOK, shipType)
}

// @Summary Get ship type by name (case insensitive)
// @Tags lookups
// @Produce json
// @Param name path string true "Ship type"
// @Success 200 {object} ds.ShipType
// @Failure 404 {object} ErrorResponse
// @Router /api/typenavire/byName/{name} [get]
func (h *LookupHandler) GetShipTypeByNameAPI(c *gin.Context) {
	shipType, err := h.Repository.GetShipTypeByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, "GetShipTypeByNameAPI", err)
		return
	}
	c.JSON(http.StatusOK, shipType)
}

// @Summary Create ship type, or return the existing one
// @Tags lookups
// @Accept json
// @Produce json
// @Param type body ds.ShipType true "Ship type"
// @Success 201 {object} ds.ShipType
// @Success 200 {object} ds.ShipType "already registered"
// @Failure 400 {object} ErrorResponse
// @Router /api/typenavire [post]
func (h *LookupHandler) CreateShipTypeAPI(c *gin.Context) {
	var body ds.ShipType
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err.Error())
		return
	}
	shipType, created, err := h.Repository.CreateShipType(c.Request.Context(), body.Name)
	if err != nil {
		respondError(c, "CreateShipTypeAPI", err)
		return
	}
	c.JSON(createdOrOK(created), shipType)
}

// @Summary List statutory certificate types
// @Tags lookups
// @Produce json
// @Success 200 {array} ds.CertificateTypeInfo
// @Router /api/typescertif [get]
func (h *LookupHandler) GetCertificateTypesAPI(c *gin.Context) {
	c.JSON(http.StatusOK, ds.CertificateTypes())
}
