package api

import (
	"context"
	"net/http"
	"time"

	"maritime_registry/internal/app/ds"

	"github.com/gin-gonic/gin"
)

type CertificateHandler struct {
	Repository interface {
		RequestCertificate(ctx context.Context, req ds.CertificateRequest) (ds.Certificate, error)
		GetCertificates(ctx context.Context, imo int) ([]ds.Certificate, error)
		GetCertificate(ctx context.Context, id int) (ds.Certificate, error)
		CreateCertificate(ctx context.Context, in ds.CertificateInput) (ds.Certificate, error)
		UpdateCertificate(ctx context.Context, id int, in ds.CertificateInput) (ds.Certificate, error)
		DeleteCertificate(ctx context.Context, id int) error
	}
	Metrics interface {
		IncrementCertificatesIssued(certificateType string)
	}
}

// CertificateIssued is the answer of the request workflow.
type CertificateIssued struct {
	Message        string    `json:"message"`
	CertificateID  int       `json:"certificat_id"`
	Type           string    `json:"type_certif"`
	IssueDate      time.Time `json:"date_delivrance"`
	ExpirationDate time.Time `json:"date_expiration"`
	IMO            int       `json:"imo"`
}

// RequestCertificateAPI - POST /api/certificate/request
// @Summary Issue a certificate for an active ship on behalf of its owner
// @Description Checks the ship exists, that OwnerEmail matches the owner contact,
// @Description that the type is known and that the ship is Actif. Valid one year.
// @Tags certificates
// @Accept json
// @Produce json
// @Param request body ds.CertificateRequest true "Request"
// @Success 200 {object} CertificateIssued
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/certificate/request [post]
func (h *CertificateHandler) RequestCertificateAPI(c *gin.Context) {
	var req ds.CertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	cert, err := h.Repository.RequestCertificate(c.Request.Context(), req)
	if err != nil {
		respondError(c, "RequestCertificateAPI", err)
		return
	}
	if h.Metrics != nil {
		h.Metrics.IncrementCertificatesIssued(cert.Type)
	}
	c.JSON(http.StatusOK, CertificateIssued{
		Message:        "Certificat créé avec succès",
		CertificateID:  cert.ID,
		Type:           cert.Type,
		IssueDate:      cert.IssueDate,
		ExpirationDate: cert.ExpiryDate,
		IMO:            cert.IMO,
	})
}

// @Summary List certificates
// @Tags certificates
// @Produce json
// @Param imo query int false "Only certificates of this ship"
// @Success 200 {array} ds.Certificate
// @Router /api/certificats [get]
func (h *CertificateHandler) GetCertificatesAPI(c *gin.Context) {
	listRecords(c, "GetCertificatesAPI", h.Repository.GetCertificates)
}

// @Summary Get certificate
// @Tags certificates
// @Produce json
// @Param id path int true "Certificate id"
// @Success 200 {object} ds.Certificate
// @Failure 404 {object} ErrorResponse
// @Router /api/certificats/{id} [get]
func (h *CertificateHandler) GetCertificateAPI(c *gin.Context) {
	getRecord(c, "GetCertificateAPI", h.Repository.GetCertificate)
}

// @Summary Record a certificate manually
// @Tags certificates
// @Accept json
// @Produce json
// @Param certificate body ds.CertificateInput true "Certificate"
// @Success 201 {object} ds.Certificate
// @Failure 400 {object} ErrorResponse
// @Router /api/certificats [post]
func (h *CertificateHandler) CreateCertificateAPI(c *gin.Context) {
	createRecord(c, "CreateCertificateAPI", h.Repository.CreateCertificate)
}

// @Summary Update certificate
// @Tags certificates
// @Accept json
// @Produce json
// @Param id path int true "Certificate id"
// @Param certificate body ds.CertificateInput true "Certificate"
// @Success 200 {object} ds.Certificate
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/certificats/{id} [put]
func (h *CertificateHandler) UpdateCertificateAPI(c *gin.Context) {
	updateRecord(c, "UpdateCertificateAPI", h.Repository.UpdateCertificate)
}

// @Summary Delete certificate
// @Tags certificates
// @Param id path int true "Certificate id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/certificats/{id} [delete]
func (h *CertificateHandler) DeleteCertificateAPI(c *gin.Context) {
	deleteRecord(c, "DeleteCertificateAPI", h.Repository.DeleteCertificate)
}
