package routes

import (
	"faculty-appraisal-api/controllers"
	"faculty-appraisal-api/middleware"
	"faculty-appraisal-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
		}

		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "Faculty Appraisal API is running",
			})
		})

		// Protected routes (require authentication)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/auth/me", controllers.GetMe)
			protected.PUT("/auth/profile", controllers.UpdateProfile)
			protected.PUT("/auth/change-password", controllers.ChangePassword)

			// Faculty workflow
			faculty := protected.Group("/faculty")
			faculty.Use(middleware.RequireRole(models.RoleFaculty))
			{
				faculty.GET("/dashboard", controllers.GetFacultyDashboard)

				faculty.GET("/appraisals", controllers.GetAppraisals)
				faculty.GET("/appraisals/:id", controllers.GetAppraisal)
				faculty.POST("/appraisals", controllers.CreateAppraisal)
				faculty.PUT("/appraisals/:id", controllers.UpdateAppraisal)
				faculty.DELETE("/appraisals/:id", controllers.DeleteAppraisal)
				faculty.POST("/appraisals/:id/submit", controllers.SubmitAppraisal)

				// Sub-records of the active draft
				faculty.POST("/publications", controllers.AddPublication)
				faculty.PUT("/publications/:id", controllers.UpdatePublication)
				faculty.DELETE("/publications/:id", controllers.DeletePublication)

				faculty.POST("/events", controllers.AddEvent)
				faculty.PUT("/events/:id", controllers.UpdateEvent)
				faculty.DELETE("/events/:id", controllers.DeleteEvent)
			}

			// Admin review
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/dashboard", controllers.GetAdminDashboard)

				admin.GET("/faculty", controllers.GetFacultyList)
				admin.GET("/faculty/:id", controllers.GetFacultyMember)
				admin.PUT("/faculty/:id/status", controllers.SetFacultyStatus)

				admin.GET("/appraisals", controllers.GetSubmittedAppraisals)
				admin.GET("/appraisals/:id", controllers.GetAppraisalForReview)
				admin.PUT("/appraisals/:id/review", controllers.ReviewAppraisal)

				admin.GET("/reports", controllers.GetAppraisalReport)
				admin.GET("/analytics", controllers.GetAnalytics)
			}
		}
	}
}
