package routes

import (
	"careerguide/controllers"
	_ "careerguide/docs"
	middlewares "careerguide/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controllers gom các controller cần mount
type Controllers struct {
	Career *controllers.CareerController
	Chat   *controllers.ChatController
	User   *controllers.UserController
	Health *controllers.HealthController
}

func SetupRoutes(router *gin.Engine, ctl Controllers) {
	router.Use(middlewares.ErrorHandler())

	router.GET("/ping", ctl.Health.Ping)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if ctl.Chat != nil {
		router.GET("/ws/chat", ctl.Chat.WebSocket)
	}

	for _, prefix := range []string{"/api", "/api/v1"} {
		api := router.Group(prefix)

		api.GET("/health", ctl.Health.Health)
		api.GET("/ready", ctl.Health.Ready)

		api.POST("/analyze-career", ctl.Career.AnalyzeCareer)

		chat := api.Group("/chat", middlewares.SessionMiddleware())
		chat.POST("", ctl.Chat.Chat)
		chat.GET("/history", ctl.Chat.History)
		chat.DELETE("/history", ctl.Chat.ClearHistory)

		users := api.Group("/users")
		users.POST("", ctl.User.CreateUser)
		users.GET("/by-username/:username", ctl.User.GetUserByUsername)
		users.GET("/:id", ctl.User.GetUser)
		users.GET("/:id/careers", ctl.User.GetUserCareers)
		users.GET("/:id/chat-history", ctl.User.GetUserChatHistory)
	}
}
