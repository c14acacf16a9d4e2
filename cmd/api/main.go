package main

import (
	_ "carport_quotes/docs"
	"carport_quotes/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Carport Quotes API
// @version         1.0
// @description     Carport inquiry intake and salesman assignment, backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
