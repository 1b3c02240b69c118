package api

import (
	"net/http"

	"konasal-backend/internal/auth/delivery"
	authUsecase "konasal-backend/internal/auth/usecase"
	courseDelivery "konasal-backend/internal/course/delivery"
	courseUsecase "konasal-backend/internal/course/usecase"
	paymentDelivery "konasal-backend/internal/payment/delivery"
	paymentUsecase "konasal-backend/internal/payment/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, courseUc courseUsecase.CourseUsecase, paymentUc paymentUsecase.PaymentUsecase) {
	authHandler := delivery.NewAuthHandler(authUc)
	courseHandler := courseDelivery.NewCourseHandler(courseUc)
	paymentHandler := paymentDelivery.NewPaymentHandler(paymentUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/verify-email", authHandler.VerifyEmail)
			auth.POST("/resend-verification", authHandler.ResendVerification)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(delivery.AuthMiddleware(authUc))
		{
			users.GET("/profile", authHandler.Me)
			users.PUT("/profile", authHandler.UpdateProfile)
			users.GET("/enrollments", courseHandler.ListEnrollments)
			users.POST("/courses/:id/progress", courseHandler.UpdateProgress)
		}

		// Course routes (listing is public, enrollment is not)
		courses := api.Group("/courses")
		{
			courses.GET("", courseHandler.ListCourses)
			courses.GET("/:id", courseHandler.GetCourse)
			courses.POST("/enroll/:id", delivery.AuthMiddleware(authUc), courseHandler.Enroll)
		}

		// Payment routes (protected)
		payments := api.Group("/payments")
		payments.Use(delivery.AuthMiddleware(authUc))
		{
			payments.POST("/create-order", paymentHandler.CreateOrder)
			payments.POST("/capture-order/:orderID", paymentHandler.CaptureOrder)
			payments.GET("", paymentHandler.ListPayments)
		}
	}
}
