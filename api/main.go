package main

import "github.com/rogerio-castellano/inventory-api/internal/cli"

// @title Inventory Backend API
// @version 1.0
// @description REST API for products, warehouses, categories, brands, product images and warehouse shifts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cli.Execute()
}
