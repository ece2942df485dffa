package routes

import (
	"net/http"
	"time"

	"backend/controllers"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter(
	logger *zap.Logger,
	foods *controllers.FoodController,
	notes *controllers.NoteController,
	rt *controllers.RealtimeController,
) *gin.Engine {
	r := gin.New()

	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Freshrack server is running")
	})

	api := r.Group("/api")
	{
		api.POST("/foods", foods.Create)
		api.GET("/foods", foods.List)

		// static segments must be registered so /api/foods/stats is not
		// read as a lookup for id "stats"
		api.GET("/foods/nearly-expired", foods.NearlyExpired)
		api.GET("/foods/expired", foods.Expired)
		api.GET("/foods/stats", foods.Stats)
		api.GET("/foods/user/:email", foods.ByUser)

		api.GET("/foods/:id", foods.Get)
		api.PUT("/foods/:id", foods.Update)
		api.DELETE("/foods/:id", foods.Delete)

		api.GET("/foods/:id/notes", notes.List)
		api.POST("/foods/:id/notes", notes.Create)

		api.GET("/realtime/alerts", rt.AlertsWS)
	}

	return r
}
