package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/foodcity/feedback-server/controllers"
	"github.com/foodcity/feedback-server/middleware"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		// Schema boundary: the form-rendering client builds the UI from
		// these configs, nothing is hardcoded client-side.
		api.GET("/questionnaires", controllers.ListQuestionnaires)
		api.GET("/questionnaires/:type", controllers.GetQuestionnaire)

		// Public place lookup behind feedback links / QR codes.
		api.GET("/places/slug/:slug", controllers.GetPlaceBySlug)

		// Public submission endpoint.
		api.POST("/feedback", middleware.RateLimitFeedbackSubmit(), controllers.SubmitFeedback)

		// Passcode check, issues the admin session token.
		api.POST("/admin/verify", middleware.RateLimitAdminVerify(), controllers.VerifyPasscode)

		// Reads: admin and school roles.
		protected := api.Group("/")
		protected.Use(middleware.AuthAdmin())
		{
			protected.GET("/feedback", controllers.ListFeedback)
			protected.GET("/feedback/stats", controllers.GetFeedbackStats)
			protected.GET("/exports/:job_id", controllers.GetExport)

			// Mutations: admin role only.
			admin := protected.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.DELETE("/feedback/:id", controllers.DeleteFeedback)
				admin.POST("/feedback/export", controllers.CreateExport)

				admin.POST("/places", controllers.CreatePlace)
				admin.GET("/places", controllers.ListPlaces)
				admin.PUT("/places/:id", controllers.UpdatePlace)
				admin.DELETE("/places/:id", controllers.DeletePlace)

				admin.PUT("/admin/passcode", controllers.UpdatePasscode)
			}
		}
	}
}
