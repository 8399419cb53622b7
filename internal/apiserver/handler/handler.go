// Package handler translates HTTP requests into facade calls and facade
// results into JSON. No business rules live here beyond shaping.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func ok(c *gin.Context, v any) {
	c.JSON(http.StatusOK, v)
}

func created(c *gin.Context, v any) {
	c.JSON(http.StatusCreated, v)
}

// notFoundOr renders the facade's nil-on-not-found as a 404
func notFoundOr(c *gin.Context, v any, isNil bool) {
	if isNil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, v)
}

func fail(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
