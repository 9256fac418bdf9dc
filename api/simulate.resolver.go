package api

import (
	"fmt"

	"factorlab/internal/domain"
	"factorlab/internal/pricing"

	"github.com/gin-gonic/gin"
)

type simulateReturnsRequest struct {
	Params  domain.ParameterSet  `json:"params"`
	Factors *domain.FactorSeries `json:"factors"`
}

func (m ApiHandler) simulateReturns(c *gin.Context) {
	var requestBody simulateReturnsRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		m.returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	returns, err := pricing.SimulateReturns(requestBody.Params, requestBody.Factors)
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}

	c.JSON(200, returns)
}
