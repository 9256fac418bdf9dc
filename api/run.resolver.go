package api

import (
	"fmt"

	"factorlab/internal/app"
	"factorlab/internal/domain"

	"github.com/gin-gonic/gin"
)

type runRequest struct {
	Params  domain.ParameterSet `json:"params"`
	Periods int                 `json:"periods"`
}

func (m ApiHandler) run(c *gin.Context) {
	var requestBody runRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		m.returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	response, err := m.Playground.Run(app.RunInput{
		Params:  requestBody.Params,
		Periods: requestBody.Periods,
	})
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}

	c.JSON(200, response)
}
