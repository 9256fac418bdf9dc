package api

import (
	"factorlab/internal/domain"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) listPresets(c *gin.Context) {
	c.JSON(200, gin.H{
		"presets": domain.Presets(),
	})
}
