package api

import (
	"context"
	"net/http"

	"maritime_registry/internal/app/ds"

	"github.com/gin-gonic/gin"
)

type OwnerHandler struct {
	Repository interface {
		GetOwners(ctx context.Context) ([]ds.Owner, error)
		GetOwner(ctx context.Context, id int) (ds.Owner, error)
		GetOwnerShips(ctx context.Context, id int) ([]ds.OwnerShip, error)
		CreateOwner(ctx context.Context, owner ds.Owner) (ds.Owner, error)
		UpdateOwner(ctx context.Context, id int, owner ds.Owner) error
		DeleteOwner(ctx context.Context, id int) error
	}
}

// @Summary List owners
// @Tags owners
// @Produce json
// @Success 200 {array} ds.Owner
// @Router /api/armateurs [get]
func (h *OwnerHandler) GetOwnersAPI(c *gin.Context) {
	owners, err := h.Repository.GetOwners(c.Request.Context())
	if err != nil {
		respondError(c, "GetOwnersAPI", err)
		return
	}
	c.JSON(http.StatusOK, owners)
}

// @Summary Get owner
// @Tags owners
// @Produce json
// @Param id path int true "Owner id"
// @Success 200 {object} ds.Owner
// @Failure 404 {object} ErrorResponse
// @Router /api/armateurs/{id} [get]
func (h *OwnerHandler) GetOwnerAPI(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	owner, err := h.Repository.GetOwner(c.Request.Context(), id)
	if err != nil {
		respondError(c, "GetOwnerAPI", err)
		return
	}
	c.JSON(http.StatusOK, owner)
}

// @Summary Ships operated by an owner
// @Tags owners
// @Produce json
// @Param id path int true "Owner id"
// @Success 200 {array} ds.OwnerShip
// @Failure 404 {object} ErrorResponse
// @Router /api/armateurs/{id}/ships [get]
func (h *OwnerHandler) GetOwnerShipsAPI(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	ships, err := h.Repository.GetOwnerShips(c.Request.Context(), id)
	if err != nil {
		respondError(c, "GetOwnerShipsAPI", err)
		return
	}
	c.JSON(http.StatusOK, ships)
}

// @Summary Create owner
// @Tags owners
// @Accept json
// @Produce json
// @Param owner body ds.Owner true "Owner"
// @Success 201 {object} ds.Owner
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/armateurs [post]
func (h *OwnerHandler) CreateOwnerAPI(c *gin.Context) {
	var owner ds.Owner
	if err := c.ShouldBindJSON(&owner); err != nil {
		badRequest(c, err.Error())
		return
	}
	created, err := h.Repository.CreateOwner(c.Request.Context(), owner)
	if err != nil {
		respondError(c, "CreateOwnerAPI", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Update owner
// @Tags owners
// @Accept json
// @Param id path int true "Owner id"
// @Param owner body ds.Owner true "Owner, Armateur_Id must match the path"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/armateurs/{id} [put]
func (h *OwnerHandler) UpdateOwnerAPI(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var owner ds.Owner
	if err := c.ShouldBindJSON(&owner); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := h.Repository.UpdateOwner(c.Request.Context(), id, owner); err != nil {
		respondError(c, "UpdateOwnerAPI", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete owner
// @Tags owners
// @Param id path int true "Owner id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "still referenced by ships"
// @Router /api/armateurs/{id} [delete]
func (h *OwnerHandler) DeleteOwnerAPI(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.Repository.DeleteOwner(c.Request.Context(), id); err != nil {
		respondError(c, "DeleteOwnerAPI", err)
		return
	}
	c.Status(http.StatusNoContent)
}
