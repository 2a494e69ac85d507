package routes

import (
	"log"
	"net/http"

	_ "remindpay/docs" // This will be auto-generated
	"remindpay/internal/adapter/http/handlers"
	"remindpay/internal/adapter/http/middleware"
	repository2 "remindpay/internal/adapter/persistence/repository"
	"remindpay/internal/config"
	"remindpay/internal/infrastructure/database"
	"remindpay/internal/infrastructure/identity"
	"remindpay/internal/infrastructure/payments"
	"remindpay/internal/usecase"
	"remindpay/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB()

	reminderRepo := repository2.NewReminderDynamoRepository(ddb)
	eventRepo := repository2.NewPaymentEventDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	rzpGateway, err := payments.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	if err != nil {
		log.Printf("Razorpay gateway not configured: %v", err)
	} else {
		paymentGateway = rzpGateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(reminderRepo, eventRepo, paymentGateway, cfg.Razorpay, cfg.GatewayTimeout, cfg.StoreTimeout)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, cfg.Razorpay.KeyID)
	webhookHandler := handlers.NewWebhookHandler(paymentUseCase)

	var introspector middleware.TokenIntrospector
	supabase, err := identity.NewSupabaseClient(cfg.Supabase.URL, cfg.Supabase.AnonKey)
	if err != nil {
		log.Printf("Supabase identity provider not configured: %v", err)
	} else {
		introspector = supabase
	}

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend is running")
	})

	api := router.Group("/api")
	addPingRoutes(api)
	addPaymentRoutes(api, middleware.RequireUser(introspector), paymentHandler, webhookHandler)
}

func setMiddlewares(cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
}
