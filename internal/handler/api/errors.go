package api

import (
	"dakar-rentals/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

func abortInvalidID(c *gin.Context, err error) {
	httperr.AbortWithFields(c, err, "Invalid booking ID format", "id")
}
