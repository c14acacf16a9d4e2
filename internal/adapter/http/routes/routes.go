package routes

import (
	"log"
	"strconv"

	_ "carport_quotes/docs" // This will be auto-generated
	"carport_quotes/internal/adapter/http/handlers"
	"carport_quotes/internal/adapter/persistence/repository"
	"carport_quotes/internal/infrastructure/database"
	"carport_quotes/internal/infrastructure/notifications"
	"carport_quotes/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	inquiryRepo := repository.NewInquiryDynamoRepository(ddb)
	salesmanRepo := repository.NewSalesmanDynamoRepository(ddb)
	assignmentRepo := repository.NewAssignmentDynamoRepository(ddb)
	emailLogRepo := repository.NewEmailLogDynamoRepository(ddb)

	notifier := notifications.NewSMTPGatewayFromEnv()

	registry := usecase.NewCustomerRegistry(customerRepo)
	intakeUseCase := usecase.NewInquiryIntakeUseCase(registry, inquiryRepo, emailLogRepo, notifier)
	assignmentUseCase := usecase.NewAssignmentUseCase(inquiryRepo, salesmanRepo, assignmentRepo)

	inquiryHandler := handlers.NewInquiryHandler(intakeUseCase)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInquiryRoutes(v1, inquiryHandler, assignmentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
