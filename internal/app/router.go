package app

import (
	"studyhub_backend/docs"
	"studyhub_backend/internal/config"
	"studyhub_backend/internal/middleware"
	"studyhub_backend/internal/model"
	"studyhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 需要授权的路由
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		api.GET("/profile", c.auth.GetProfile)

		// 学习小组
		api.POST("/groups", c.group.CreateGroup)
		api.GET("/groups", c.group.ListMyGroups)
		api.GET("/groups/:groupId", c.group.GetGroup)
		api.POST("/groups/:groupId/join", c.group.JoinGroup)
		api.POST("/groups/:groupId/leave", c.group.LeaveGroup)
		api.DELETE("/groups/:groupId", c.group.DeleteGroup)
		api.DELETE("/groups/:groupId/members/:userId", c.group.RemoveMember)

		// 小组测验
		api.POST("/groups/:groupId/quizzes", c.quiz.CreateQuiz)
		api.GET("/groups/:groupId/quizzes", c.quiz.ListQuizzes)
		api.GET("/groups/:groupId/quizzes/:quizId", c.quiz.GetQuiz)
		api.DELETE("/groups/:groupId/quizzes/:quizId", c.quiz.DeleteQuiz)
		api.POST("/groups/:groupId/quizzes/:quizId/submit", c.quiz.SubmitQuiz)
		api.GET("/groups/:groupId/quizzes/:quizId/results", c.quiz.GetResults)
		api.GET("/groups/:groupId/quizzes/:quizId/results/latest", c.quiz.GetLatestResult)

		// 笔记与卡片
		api.POST("/notes", c.note.CreateNote)
		api.GET("/notes", c.note.ListMyNotes)
		api.GET("/notes/:noteId", c.note.GetNote)
		api.PUT("/notes/:noteId", c.note.UpdateNote)
		api.DELETE("/notes/:noteId", c.note.DeleteNote)
		api.GET("/groups/:groupId/notes", c.note.ListGroupNotes)
		api.POST("/flashcards", c.note.CreateFlashcard)
		api.GET("/flashcards", c.note.ListMyFlashcards)
		api.DELETE("/flashcards/:cardId", c.note.DeleteFlashcard)

		// 小组资料
		api.POST("/groups/:groupId/resources", c.resource.UploadResource)
		api.GET("/groups/:groupId/resources", c.resource.ListResources)
		api.GET("/groups/:groupId/resources/:resourceId/download", c.resource.DownloadResource)
		api.DELETE("/groups/:groupId/resources/:resourceId", c.resource.DeleteResource)

		// 截止提醒
		api.POST("/groups/:groupId/deadlines", c.deadline.CreateDeadline)
		api.GET("/groups/:groupId/deadlines", c.deadline.ListDeadlines)
		api.PUT("/groups/:groupId/deadlines/:deadlineId", c.deadline.UpdateDeadline)
		api.DELETE("/groups/:groupId/deadlines/:deadlineId", c.deadline.DeleteDeadline)

		// AI 生成
		api.POST("/ai/notes", c.ai.GenerateNote)
		api.POST("/ai/flashcards", c.ai.GenerateFlashcards)
	}

	// 平台管理员接口
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.auth.ListUsers)
		admin.PATCH("/users/:userId/disabled", c.auth.SetUserDisabled)
	}
}
