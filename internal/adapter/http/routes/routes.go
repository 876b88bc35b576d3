package routes

import (
	"log"
	"os"
	"strings"

	_ "studio_ops/docs" // This will be auto-generated
	"studio_ops/internal/adapter/http/handlers"
	repository2 "studio_ops/internal/adapter/persistence/repository"
	"studio_ops/internal/infrastructure/database"
	"studio_ops/internal/infrastructure/notification"
	"studio_ops/internal/infrastructure/payments"
	"studio_ops/internal/infrastructure/render"
	"studio_ops/internal/usecase"
	"studio_ops/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	clientRepo := repository2.NewClientDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	feedbackRepo := repository2.NewFeedbackDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var notificationGateway interfaces.INotificationGateway
	fonnteGateway, err := notification.NewFonnteGateway(os.Getenv("FONNTE_API_KEY"))
	if err != nil {
		log.Printf("Fonnte gateway not configured: %v", err)
	} else {
		notificationGateway = fonnteGateway
	}

	clientUseCase := usecase.NewClientUseCase(clientRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, clientRepo, render.NewPNGRenderer())
	invoiceNumberUseCase := usecase.NewInvoiceNumberUseCase(invoiceRepo)
	projectUseCase := usecase.NewProjectUseCase(invoiceRepo, clientRepo, projectRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, paymentGateway)
	feedbackUseCase := usecase.NewFeedbackUseCase(feedbackRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(clientRepo, invoiceRepo, paymentRepo, feedbackRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationGateway)

	clientHandler := handlers.NewClientHandler(clientUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase, invoiceNumberUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)

	// Rotas publicas
	root := router.Group("")
	addPingRoutes(root)
	addResourceRoutes(root, clientHandler, invoiceHandler, projectHandler, paymentHandler, feedbackHandler, dashboardHandler, notificationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig()))
}

func corsConfig() cors.Config {
	config := cors.DefaultConfig()
	allowedOrigins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if allowedOrigins == "" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = splitAndTrim(allowedOrigins)
	}
	config.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	config.AddAllowHeaders("Origin", "Content-Type", "Authorization")
	config.AddExposeHeaders("Content-Length", "Content-Disposition")
	return config
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
