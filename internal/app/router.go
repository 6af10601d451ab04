package app

import (
	"socialhub_backend/internal/config"
	"socialhub_backend/internal/middleware"
	"socialhub_backend/internal/model"
	"socialhub_backend/pkg/monitoring"

	_ "socialhub_backend/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, cfg *config.Config) {
	// 公开路由
	router.GET("/api/health", c.health.HealthCheck)
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/api/register", c.auth.Register)
	router.POST("/api/login", c.auth.Login)

	// 需要登录的路由
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	api.Use(middleware.ActivityMiddleware(s.presence))
	{
		api.POST("/logout", c.auth.Logout)

		// 个人资料与设置
		api.GET("/profile", c.user.GetProfile)
		api.GET("/users/:username", c.user.GetUserProfile)
		api.PUT("/profile/bio", c.user.UpdateBio)
		api.POST("/profile/avatar", c.user.UploadAvatar)
		api.GET("/settings", c.user.GetSettings)
		api.PUT("/settings", c.user.UpdateSettings)

		// 动态流
		api.POST("/posts", c.feed.CreatePost)
		api.GET("/posts", c.feed.GetFeed)
		api.POST("/posts/:id/like", c.feed.LikePost)
		api.POST("/posts/:id/comments", c.feed.AddComment)
		api.GET("/posts/:id/comments", c.feed.GetComments)
		api.GET("/trending", c.feed.TrendingTopics)

		// 好友
		api.POST("/friends/requests", c.friendship.SendRequest)
		api.PUT("/friends/requests/:id", c.friendship.HandleRequest)
		api.GET("/friends", c.friendship.ListFriends)
		api.GET("/friends/requests", c.friendship.ListPendingRequests)
		api.DELETE("/friends/:id", c.friendship.RemoveFriend)

		// 通知
		api.GET("/notifications", c.notification.ListUnread)
		api.PUT("/notifications/:id/read", c.notification.MarkRead)
		api.PUT("/notifications/read-all", c.notification.MarkAllRead)

		// 私信
		api.POST("/messages", c.message.Send)
		api.GET("/messages/:username", c.message.Conversation)
		api.GET("/ws", c.message.ServeWS)

		// AI 助手
		api.POST("/assistant/ask", c.assistant.Ask)
		api.POST("/assistant/ask/stream", c.assistant.AskStream)

		// 意见反馈
		api.POST("/suggestions", c.suggestion.Submit)
	}

	// 管理员路由
	admin := api.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.GET("/users", c.admin.ListUsers)
		admin.DELETE("/users/:username", c.admin.BanUser)
		admin.GET("/posts", c.admin.ListPosts)
		admin.DELETE("/posts/:id", c.admin.DeletePost)
		admin.GET("/suggestions", c.admin.ListSuggestions)
	}
}
