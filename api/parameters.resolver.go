package api

import (
	"factorlab/internal/domain"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) listParameterBounds(c *gin.Context) {
	c.JSON(200, gin.H{
		"parameters": domain.ParameterBounds(),
	})
}
