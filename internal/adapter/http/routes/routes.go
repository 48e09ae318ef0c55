package routes

import (
	"log"
	"strconv"

	_ "fieldserve/docs" // This will be auto-generated
	"fieldserve/internal/adapter/http/handlers"
	"fieldserve/internal/adapter/http/middleware"
	"fieldserve/internal/adapter/persistence/memory"
	repository2 "fieldserve/internal/adapter/persistence/repository"
	"fieldserve/internal/auth"
	"fieldserve/internal/infrastructure/database"
	"fieldserve/internal/infrastructure/notifications"
	"fieldserve/internal/infrastructure/reports"
	"fieldserve/internal/usecase"

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

	recordRepo := repository2.NewMaintenanceRecordDynamoRepository(ddb)
	checklistRepo := repository2.NewChecklistTemplateDynamoRepository(ddb)
	docRefRepo := repository2.NewDocReferenceDynamoRepository(ddb)
	resultRepo := repository2.NewSubmissionResultDynamoRepository(ddb)
	batchRepo := repository2.NewSubmissionBatchDynamoRepository(ddb)
	reportRepo := repository2.NewPMReportDynamoRepository(ddb)
	otpRepo := repository2.NewOtpChallengeDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	sessionStore := memory.NewWizardSessionStore()
	authService := auth.NewService()
	renderer := reports.NewPMReportRenderer()

	// On config errors the gateway is a typed nil whose methods return
	// ErrMailerGatewayNotConfigured.
	mailer, err := notifications.NewMailerGateway()
	if err != nil {
		log.Printf("Mailer gateway not configured: %v", err)
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, authService)
	recordUseCase := usecase.NewRecordUseCase(recordRepo, checklistRepo, docRefRepo)
	wizardUseCase := usecase.NewWizardUseCase(recordRepo, checklistRepo, sessionStore, resultRepo)
	otpUseCase := usecase.NewOtpUseCase(otpRepo, mailer)
	submissionUseCase := usecase.NewSubmissionUseCase(recordRepo, resultRepo, docRefRepo, batchRepo, reportRepo, otpRepo, renderer, mailer)
	proposalUseCase := usecase.NewProposalUseCase()

	authHandler := handlers.NewAuthHandler(authUseCase)
	recordHandler := handlers.NewRecordHandler(recordUseCase)
	wizardHandler := handlers.NewWizardHandler(wizardUseCase)
	otpHandler := handlers.NewOtpHandler(otpUseCase)
	submissionHandler := handlers.NewSubmissionHandler(submissionUseCase)
	proposalHandler := handlers.NewProposalHandler(proposalUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	protected := v1.Group("")
	protected.Use(middleware.RequireAuth(authService))
	addPortalRoutes(protected, recordHandler, wizardHandler, otpHandler, submissionHandler, proposalHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
