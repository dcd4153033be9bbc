package main

import (
	_ "offer_agent/docs"
	"offer_agent/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Offer Agent API
// @version         1.0
// @description     Property extraction, offer letter generation and checkout.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
