package routes

import (
	"log"
	"os"
	"strconv"

	_ "imobtech_xpto/docs" // This will be auto-generated
	"imobtech_xpto/internal/adapter/http/handlers"
	repository2 "imobtech_xpto/internal/adapter/persistence/repository"
	"imobtech_xpto/internal/domain/catalog"
	"imobtech_xpto/internal/infrastructure/database"
	"imobtech_xpto/internal/infrastructure/payments"
	"imobtech_xpto/internal/usecase"
	"imobtech_xpto/internal/usecase/interfaces"

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
	cat := catalog.Default()
	log.Printf("[catalog][routes] version=%s hash=%s", cat.Version, cat.Hash())

	ddb := database.ConnectDynamoDB()

	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	quoteUseCase := usecase.NewQuoteUseCase(cat)
	proposalUseCase := usecase.NewProposalUseCase(cat, proposalRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, proposalRepo, paymentGateway)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	catalogHandler := handlers.NewCatalogHandler(cat)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, quoteHandler, proposalHandler, paymentHandler, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
