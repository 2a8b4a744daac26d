package api

import (
	"errors"
	"net/http"
	"strconv"

	"maritime_registry/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponse is the body of every non 2xx answer.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

var errorStatus = []struct {
	kind    error
	status  int
	message string
}{
	{repository.ErrNotFound, http.StatusNotFound, "Resource not found"},
	{repository.ErrConflict, http.StatusConflict, "Resource already exists or is still referenced"},
	{repository.ErrValidation, http.StatusBadRequest, "Invalid request"},
	{repository.ErrDependents, http.StatusBadRequest, "Resource has dependent records"},
	{repository.ErrOwnerMismatch, http.StatusBadRequest, "Owner email mismatch"},
	{repository.ErrUnknownCertificateType, http.StatusBadRequest, "Invalid certificate type"},
	{repository.ErrShipNotActive, http.StatusBadRequest, "Ship is not active"},
	{repository.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
}

// respondError maps repository errors onto status codes. Anything unknown is
// logged and answered with a generic 500.
func respondError(c *gin.Context, handlerName string, err error) {
	for _, e := range errorStatus {
		if !errors.Is(err, e.kind) {
			continue
		}
		message := e.message
		var repoErr *repository.Error
		if errors.As(err, &repoErr) {
			message = repoErr.Message
		}
		logrus.Warnf("%s: %v", handlerName, err)
		c.JSON(e.status, ErrorResponse{Message: message})
		return
	}

	logrus.Errorf("%s: %v", handlerName, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error", Code: "internal_error"})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

// intParam reads a numeric path parameter and answers 400 when it is not one.
func intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		badRequest(c, "Invalid "+name)
		return 0, false
	}
	return value, true
}

// imoQuery reads the optional ?imo= filter; 0 means no filter.
func imoQuery(c *gin.Context) (int, bool) {
	raw := c.Query("imo")
	if raw == "" {
		return 0, true
	}
	imo, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(c, "Invalid imo")
		return 0, false
	}
	return imo, true
}
