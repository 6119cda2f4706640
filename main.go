package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/zonefest/zonefest-api/cmd/app"
)

// @contact.name   Program Office
// @contact.email  programoffice@zonefest.in
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
