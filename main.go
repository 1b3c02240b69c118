package main

import (
	"context"
	"log"
	"time"

	api "konasal-backend/cmd/api"
	"konasal-backend/internal/auth/cache"
	authdomain "konasal-backend/internal/auth/domain"
	authRepo "konasal-backend/internal/auth/repository"
	"konasal-backend/internal/auth/token"
	authUsecase "konasal-backend/internal/auth/usecase"
	coursedomain "konasal-backend/internal/course/domain"
	courseRepo "konasal-backend/internal/course/repository"
	courseUsecase "konasal-backend/internal/course/usecase"
	paymentdomain "konasal-backend/internal/payment/domain"
	paymentRepo "konasal-backend/internal/payment/repository"
	paymentUsecase "konasal-backend/internal/payment/usecase"
	"konasal-backend/pkg/config"
	"konasal-backend/pkg/database"
	"konasal-backend/pkg/mailer"
	"konasal-backend/pkg/paypal"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &coursedomain.Course{}, &coursedomain.Enrollment{}, &paymentdomain.Payment{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize token cache (Redis)
	tokenCache := cache.New(&cache.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer tokenCache.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tokenCache.Ping(pingCtx); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Session token issuer
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.JWTAccessExpiry)

	// Mail delivery chain: SendGrid, then SMTP, then the operator log
	mail := mailer.FromConfig(cfg)

	exposeCodes := cfg.ExposeAuthCodes && !cfg.IsProduction()
	if cfg.ExposeAuthCodes && cfg.IsProduction() {
		log.Printf("[WARN] AUTH_EXPOSE_CODES ignored in production")
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	courseRepository := courseRepo.NewCourseRepository(db)
	enrollmentRepository := courseRepo.NewEnrollmentRepository(db)
	paymentRepository := paymentRepo.NewPaymentRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, tokenCache, issuer, mail, authUsecase.Options{
		VerificationTTL: cfg.VerificationTTL,
		ResetTokenTTL:   cfg.ResetTokenTTL,
		MailTimeout:     cfg.MailTimeout,
		ExposeAuthCodes: exposeCodes,
	})
	courseUsecaseInstance := courseUsecase.NewCourseUsecase(courseRepository, enrollmentRepository)

	paypalClient := paypal.NewClient(cfg.PayPalClientID, cfg.PayPalClientSecret, cfg.PayPalBaseURL)
	paymentUsecaseInstance := paymentUsecase.NewPaymentUsecase(paymentRepository, courseUsecaseInstance, paypalClient)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, courseUsecaseInstance, paymentUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
