package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Shared bodies of the per-record CRUD endpoints.

func listRecords[T any](c *gin.Context, handlerName string, fetch func(ctx context.Context, imo int) ([]T, error)) {
	imo, ok := imoQuery(c)
	if !ok {
		return
	}
	rows, err := fetch(c.Request.Context(), imo)
	if err != nil {
		respondError(c, handlerName, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func getRecord[T any](c *gin.Context, handlerName string, fetch func(ctx context.Context, id int) (T, error)) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	row, err := fetch(c.Request.Context(), id)
	if err != nil {
		respondError(c, handlerName, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func createRecord[In, Out any](c *gin.Context, handlerName string, create func(ctx context.Context, in In) (Out, error)) {
	var in In
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err.Error())
		return
	}
	row, err := create(c.Request.Context(), in)
	if err != nil {
		respondError(c, handlerName, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func updateRecord[In, Out any](c *gin.Context, handlerName string, update func(ctx context.Context, id int, in In) (Out, error)) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var in In
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err.Error())
		return
	}
	row, err := update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, handlerName, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func deleteRecord(c *gin.Context, handlerName string, remove func(ctx context.Context, id int) error) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := remove(c.Request.Context(), id); err != nil {
		respondError(c, handlerName, err)
		return
	}
	c.Status(http.StatusNoContent)
}
