package main

import (
	_ "remindpay/docs"
	"remindpay/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Reminder Payments API
// @version         1.0
// @description     Reminder payment backend (Razorpay orders, signature verification, webhooks) backed by DynamoDB.

// @host localhost:5000

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
