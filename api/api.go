package api

import (
	"errors"
	"fmt"
	"time"

	"factorlab/internal/app"
	"factorlab/internal/pricing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Playground app.PlaygroundHandler
	Logger     *zap.SugaredLogger
}

func (m ApiHandler) StartApi(port int) error {
	return m.buildRouter().Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) buildRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to factorlab"})
	})
	router.POST("/run", m.run)
	router.POST("/factors", m.generateFactors)
	router.POST("/simulate", m.simulateReturns)
	router.POST("/estimate", m.estimate)
	router.GET("/presets", m.listPresets)
	router.GET("/parameters", m.listParameterBounds)

	return router
}

// statusForError maps the pipeline's error taxonomy onto http statuses:
// bad inputs are the caller's fault, a rank-deficient design is a valid
// request the math cannot serve.
func statusForError(err error) int {
	var invalidArgument pricing.InvalidArgumentError
	var shapeMismatch pricing.ShapeMismatchError
	var singularDesign pricing.SingularDesignError

	switch {
	case errors.As(err, &invalidArgument), errors.As(err, &shapeMismatch):
		return 400
	case errors.As(err, &singularDesign):
		return 422
	default:
		return 500
	}
}

func (m ApiHandler) returnErrorJson(err error, c *gin.Context) {
	m.Logger.Error(err)
	c.AbortWithStatusJSON(statusForError(err), gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	requestID := uuid.New()
	start := time.Now().UTC()

	ctx.Next()

	m.Logger.Infow("handled request",
		"requestID", requestID,
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"ip", ctx.ClientIP(),
		"statusCode", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
