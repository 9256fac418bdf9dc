package api

import (
	"fmt"

	"factorlab/internal/domain"
	"factorlab/internal/pricing"

	"github.com/gin-gonic/gin"
)

type estimateRequest struct {
	Returns  *domain.ReturnSeries `json:"returns"`
	Factors  *domain.FactorSeries `json:"factors"`
	RiskFree float64              `json:"riskFree"`
}

func (m ApiHandler) estimate(c *gin.Context) {
	var requestBody estimateRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		m.returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	result, err := pricing.Estimate(requestBody.Returns, requestBody.Factors, requestBody.RiskFree)
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}
