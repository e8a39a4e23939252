package routes

import (
	"log"
	"os"
	"strconv"

	_ "garage_manager/docs" // This will be auto-generated
	"garage_manager/internal/adapter/http/handlers"
	repository2 "garage_manager/internal/adapter/persistence/repository"
	"garage_manager/internal/infrastructure/database"
	"garage_manager/internal/infrastructure/payments"
	"garage_manager/internal/usecase"
	"garage_manager/internal/usecase/interfaces"

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

	carRepo := repository2.NewCarDynamoRepository(ddb)
	packageRepo := repository2.NewPackageDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceJobDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	counterRepo := repository2.NewInvoiceCounterDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	carUseCase := usecase.NewCarUseCase(carRepo)
	packageUseCase := usecase.NewPackageUseCase(packageRepo)
	serviceUseCase := usecase.NewServiceJobUseCase(serviceRepo, carRepo, packageRepo, paymentRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, serviceRepo, carRepo, paymentGateway)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, counterRepo, serviceRepo, carRepo)

	carHandler := handlers.NewCarHandler(carUseCase)
	packageHandler := handlers.NewPackageHandler(packageUseCase)
	serviceHandler := handlers.NewServiceJobHandler(serviceUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("", IdentityMiddleware())
	addGarageRoutes(authed, carHandler, packageHandler, serviceHandler)
	addBillingRoutes(authed, paymentHandler, invoiceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
