// file: routes/router.go
package routes

import (
	"os"
	"time"

	"GOTCTF/controllers"
	"GOTCTF/middlewares"
	"GOTCTF/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func corsConfig() cors.Config {
	// 本地开发端口 + 部署域名（环境变量注入）
	origins := []string{
		"http://localhost:8080",
		"http://localhost:5173",
		"http://localhost:3000",
	}
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		origins = append(origins, frontend)
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	cfg.AllowCredentials = true
	cfg.MaxAge = 12 * time.Hour
	return cfg
}

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig()))

	apiV1 := r.Group("/api/v1")
	{
		// --- 公开接口 ---
		apiV1.POST("/register", controllers.Register)
		apiV1.POST("/login", controllers.Login)
		apiV1.GET("/teams", controllers.GetTeams)
		apiV1.GET("/solves/feed", controllers.GetSolveFeed)
		apiV1.GET("/game-state", controllers.GetGameState)
		apiV1.GET("/events", controllers.StreamEvents)

		// --- 需要登录的接口 ---
		authed := apiV1.Group("")
		authed.Use(middlewares.JWTAuthMiddleware())
		{
			authed.GET("/challenges", controllers.ListChallenges)
			authed.POST("/submit", controllers.SubmitFlag)
			authed.POST("/complete-round", controllers.CompleteRound)
			authed.GET("/user/:id", controllers.GetTeamDetail)
		}

		// --- 仅管理员可访问的接口 ---
		adminRoutes := apiV1.Group("")
		adminRoutes.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.POST("/game-state", controllers.UpdateGameState)
			adminRoutes.POST("/reset-round-user", controllers.ResetRoundUser)
			adminRoutes.GET("/admin/teams", controllers.AdminGetTeams)
			adminRoutes.PUT("/admin/teams/:id/status", controllers.UpdateTeamStatus)
			adminRoutes.GET("/admin/teams/export", controllers.ExportTeamsCSV)
			adminRoutes.GET("/admin/attempts", controllers.GetAttemptLogs)
		}
	}

	return r
}
