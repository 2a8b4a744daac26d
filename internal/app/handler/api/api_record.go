package api

import (
	"context"

	"maritime_registry/internal/app/ds"

	"github.com/gin-gonic/gin"
)

// Inspection, mutation, immatriculation and radiation records. Each one
// references a ship by imo and is removed with it.

type InspectionHandler struct {
	Repository interface {
		GetInspections(ctx context.Context, imo int) ([]ds.Inspection, error)
		GetInspection(ctx context.Context, id int) (ds.Inspection, error)
		CreateInspection(ctx context.Context, in ds.Inspection) (ds.Inspection, error)
		UpdateInspection(ctx context.Context, id int, in ds.Inspection) (ds.Inspection, error)
		DeleteInspection(ctx context.Context, id int) error
	}
}

// @Summary List inspections
// @Tags records
// @Produce json
// @Param imo query int false "Only records of this ship"
// @Success 200 {array} ds.Inspection
// @Router /api/inspections [get]
func (h *InspectionHandler) GetInspectionsAPI(c *gin.Context) {
	listRecords(c, "GetInspectionsAPI", h.Repository.GetInspections)
}

// @Summary Get inspection
// @Tags records
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} ds.Inspection
// @Failure 404 {object} ErrorResponse
// @Router /api/inspections/{id} [get]
func (h *InspectionHandler) GetInspectionAPI(c *gin.Context) {
	getRecord(c, "GetInspectionAPI", h.Repository.GetInspection)
}

// @Summary Create inspection
// @Tags records
// @Accept json
// @Produce json
// @Param record body ds.Inspection true "Record"
// @Success 201 {object} ds.Inspection
// @Failure 400 {object} ErrorResponse
// @Router /api/inspections [post]
func (h *InspectionHandler) CreateInspectionAPI(c *gin.Context) {
	createRecord(c, "CreateInspectionAPI", h.Repository.CreateInspection)
}

// @Summary Update inspection
// @Tags records
// @Accept json
// @Produce json
// @Param id path int true "Record id"
// @Param record body ds.Inspection true "Record"
// @Success 200 {object} ds.Inspection
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/inspections/{id} [put]
func (h *InspectionHandler) UpdateInspectionAPI(c *gin.Context) {
	updateRecord(c, "UpdateInspectionAPI", h.Repository.UpdateInspection)
}

// @Summary Delete inspection
// @Tags records
// @Param id path int true "Record id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/inspections/{id} [delete]
func (h *InspectionHandler) DeleteInspectionAPI(c *gin.Context) {
	deleteRecord(c, "DeleteInspectionAPI", h.Repository.DeleteInspection)
}

type MutationHandler struct {
	Repository interface {
		GetMutations(ctx context.Context, imo int) ([]ds.Mutation, error)
		GetMutation(ctx context.Context, id int) (ds.Mutation, error)
		CreateMutation(ctx context.Context, in ds.Mutation) (ds.Mutation, error)
		UpdateMutation(ctx context.Context, id int, in ds.Mutation) (ds.Mutation, error)
		DeleteMutation(ctx context.Context, id int) error
	}
}

// @Summary List mutations
// @Tags records
// @Produce json
// @Param imo query int false "Only records of this ship"
// @Success 200 {array} ds.Mutation
// @Router /api/mutations [get]
func (h *MutationHandler) GetMutationsAPI(c *gin.Context) {
	listRecords(c, "GetMutationsAPI", h.Repository.GetMutations)
}

// @Summary Get mutation
// @Tags records
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} ds.Mutation
// @Failure 404 {object} ErrorResponse
// @Router /api/mutations/{id} [get]
func (h *MutationHandler) GetMutationAPI(c *gin.Context) {
	getRecord(c, "GetMutationAPI", h.Repository.GetMutation)
}

// @Summary Create mutation
// @Tags records
// @Accept json
// @Produce json
// @Param record body ds.Mutation true "Record"
// @Success 201 {object} ds.Mutation
// @Failure 400 {object} ErrorResponse
// @Router /api/mutations [post]
func (h *MutationHandler) CreateMutationAPI(c *gin.Context) {
	createRecord(c, "CreateMutationAPI", h.Repository.CreateMutation)
}

// @Summary Update mutation
// @Tags records
// @Accept json
// @Produce json
// @Param id path int true "Record id"
// @Param record body ds.Mutation true "Record"
// @Success 200 {object} ds.Mutation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/mutations/{id} [put]
func (h *MutationHandler) UpdateMutationAPI(c *gin.Context) {
	updateRecord(c, "UpdateMutationAPI", h.Repository.UpdateMutation)
}

// @Summary Delete mutation
// @Tags records
// @Param id path int true "Record id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/mutations/{id} [delete]
func (h *MutationHandler) DeleteMutationAPI(c *gin.Context) {
	deleteRecord(c, "DeleteMutationAPI", h.Repository.DeleteMutation)
}

type ImmatriculationHandler struct {
	Repository interface {
		GetImmatriculations(ctx context.Context, imo int) ([]ds.Immatriculation, error)
		GetImmatriculation(ctx context.Context, id int) (ds.Immatriculation, error)
		CreateImmatriculation(ctx context.Context, in ds.Immatriculation) (ds.Immatriculation, error)
		UpdateImmatriculation(ctx context.Context, id int, in ds.Immatriculation) (ds.Immatriculation, error)
		DeleteImmatriculation(ctx context.Context, id int) error
	}
}

// @Summary List immatriculations
// @Tags records
// @Produce json
// @Param imo query int false "Only records of this ship"
// @Success 200 {array} ds.Immatriculation
// @Router /api/immatriculations [get]
func (h *ImmatriculationHandler) GetImmatriculationsAPI(c *gin.Context) {
	listRecords(c, "GetImmatriculationsAPI", h.Repository.GetImmatriculations)
}

// @Summary Get immatriculation
// @Tags records
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} ds.Immatriculation
// @Failure 404 {object} ErrorResponse
// @Router /api/immatriculations/{id} [get]
func (h *ImmatriculationHandler) GetImmatriculationAPI(c *gin.Context) {
	getRecord(c, "GetImmatriculationAPI", h.Repository.GetImmatriculation)
}

// @Summary Create immatriculation
// @Tags records
// @Accept json
// @Produce json
// @Param record body ds.Immatriculation true "Record"
// @Success 201 {object} ds.Immatriculation
// @Failure 400 {object} ErrorResponse
// @Router /api/immatriculations [post]
func (h *ImmatriculationHandler) CreateImmatriculationAPI(c *gin.Context) {
	createRecord(c, "CreateImmatriculationAPI", h.Repository.CreateImmatriculation)
}

// @Summary Update immatriculation
// @Tags records
// @Accept json
// @Produce json
// @Param id path int true "Record id"
// @Param record body ds.Immatriculation true "Record"
// @Success 200 {object} ds.Immatriculation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/immatriculations/{id} [put]
func (h *ImmatriculationHandler) UpdateImmatriculationAPI(c *gin.Context) {
	updateRecord(c, "UpdateImmatriculationAPI", h.Repository.UpdateImmatriculation)
}

// @Summary Delete immatriculation
// @Tags records
// @Param id path int true "Record id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/immatriculations/{id} [delete]
func (h *ImmatriculationHandler) DeleteImmatriculationAPI(c *gin.Context) {
	deleteRecord(c, "DeleteImmatriculationAPI", h.Repository.DeleteImmatriculation)
}

type RadiationHandler struct {
	Repository interface {
		GetRadiations(ctx context.Context, imo int) ([]ds.Radiation, error)
		GetRadiation(ctx context.Context, id int) (ds.Radiation, error)
		CreateRadiation(ctx context.Context, in ds.Radiation) (ds.Radiation, error)
		UpdateRadiation(ctx context.Context, id int, in ds.Radiation) (ds.Radiation, error)
		DeleteRadiation(ctx context.Context, id int) error
	}
}

// @Summary List radiations
// @Tags records
// @Produce json
// @Param imo query int false "Only records of this ship"
// @Success 200 {array} ds.Radiation
// @Router /api/radiations [get]
func (h *RadiationHandler) GetRadiationsAPI(c *gin.Context) {
	listRecords(c, "GetRadiationsAPI", h.Repository.GetRadiations)
}

// @Summary Get radiation
// @Tags records
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} ds.Radiation
// @Failure 404 {object} ErrorResponse
// @Router /api/radiations/{id} [get]
func (h *RadiationHandler) GetRadiationAPI(c *gin.Context) {
	getRecord(c, "GetRadiationAPI", h.Repository.GetRadiation)
}

// @Summary Create radiation
// @Tags records
// @Accept json
// @Produce json
// @Param record body ds.Radiation true "Record"
// @Success 201 {object} ds.Radiation
// @Failure 400 {object} ErrorResponse
// @Router /api/radiations [post]
func (h *RadiationHandler) CreateRadiationAPI(c *gin.Context) {
	createRecord(c, "CreateRadiationAPI", h.Repository.CreateRadiation)
}

// @Summary Update radiation
// @Tags records
// @Accept json
// @Produce json
// @Param id path int true "Record id"
// @Param record body ds.Radiation true "Record"
// @Success 200 {object} ds.Radiation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/radiations/{id} [put]
func (h *RadiationHandler) UpdateRadiationAPI(c *gin.Context) {
	updateRecord(c, "UpdateRadiationAPI", h.Repository.UpdateRadiation)
}

// @Summary Delete radiation
// @Tags records
// @Param id path int true "Record id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/radiations/{id} [delete]
func (h *RadiationHandler) DeleteRadiationAPI(c *gin.Context) {
	deleteRecord(c, "DeleteRadiationAPI", h.Repository.DeleteRadiation)
}
