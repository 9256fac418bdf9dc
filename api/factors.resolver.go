package api

import (
	"fmt"

	"factorlab/internal/pricing"

	"github.com/gin-gonic/gin"
)

type generateFactorsRequest struct {
	Periods int `json:"periods"`
}

func (m ApiHandler) generateFactors(c *gin.Context) {
	var requestBody generateFactorsRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		m.returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	periods := requestBody.Periods
	if periods == 0 {
		periods = pricing.DefaultPeriods
	}

	factors, err := pricing.GenerateFactors(periods)
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}

	c.JSON(200, factors)
}
