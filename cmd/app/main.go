package main

import (
	"stayhub/config"
	"stayhub/di"
	"stayhub/shared/logger"
)

// @title Stayhub API
// @version 1.0
// @description Property availability and peak-rate pricing.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
