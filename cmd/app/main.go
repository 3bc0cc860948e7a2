package main

//go:generate go run github.com/swaggo/swag/cmd/swag init -g cmd/app/main.go -o docs -d ../..

import (
	"osam/config"
	"osam/di"
	"osam/shared/logger"
)

// @title Osam Hill & Chichod API
// @version 1.0
// @description Content backend for the Osam Hill and Chichod tourism site: places, events, galleries and editorial accounts.
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
