package routes

import (
	"backend/controllers"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	profiles := repository.NewProfileRepo(db)
	products := repository.NewProductRepo(db)
	recipes := repository.NewRecipeRepo(db)
	plans := repository.NewPlanRepo(db)
	recommendations := repository.NewRecommendationRepo(db)
	telemetry := repository.NewTelemetryRepo(db)
	sleep := repository.NewSleepRepo(db)
	training := repository.NewTrainingRepo(db)

	activitySvc := services.NewActivityService(telemetry, sleep, training)
	mealPlanSvc := services.NewMealPlanService(profiles, products, recipes, plans)
	correctionSvc := services.NewCorrectionService(plans, recommendations, profiles, recipes, activitySvc)
	telemetrySvc := services.NewTelemetryService(telemetry, sleep, training)
	statsSvc := services.NewStatsService(telemetry, sleep, training)
	profileSvc := services.NewProfileService(profiles, recommendations)

	userCtl := controllers.NewUserController(profileSvc)
	planCtl := controllers.NewPlanController(mealPlanSvc, correctionSvc)
	telemetryCtl := controllers.NewTelemetryController(telemetrySvc)
	statsCtl := controllers.NewStatsController(statsSvc)

	r := gin.Default()

	users := r.Group("/users/:userId")
	{
		users.GET("/profile", userCtl.GetProfile)
		users.PUT("/profile", userCtl.UpsertProfile)

		users.POST("/plans", planCtl.GeneratePlan)
		users.POST("/plans/:planId/corrections/check", planCtl.CheckCorrections)

		users.GET("/recommendations", userCtl.ListRecommendations)

		users.POST("/telemetry", telemetryCtl.IngestTelemetry)
		users.POST("/sleep", telemetryCtl.IngestSleep)
		users.POST("/trainings", telemetryCtl.LogTraining)

		users.GET("/stats/daily", statsCtl.Daily)
		users.GET("/stats/weekly", statsCtl.Weekly)
		users.GET("/stats/compare", statsCtl.Compare)
	}

	r.POST("/plans/:planId/corrections/:recId/apply", planCtl.ApplyCorrection)
	r.POST("/recommendations/:recId/read", userCtl.MarkRecommendationRead)

	return r
}
