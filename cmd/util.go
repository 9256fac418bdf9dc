package cmd

import (
	"factorlab/api"
	"factorlab/internal/app"
	"factorlab/internal/logger"
)

func InitializeDependencies() (*api.ApiHandler, error) {
	return &api.ApiHandler{
		Playground: app.PlaygroundHandler{},
		Logger:     logger.New(),
	}, nil
}
