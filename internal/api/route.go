package api

import (
	"Inkpost/internal/api/middleware"
	"Inkpost/internal/pkg/logger"
	"Inkpost/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, auth middleware.Authenticator, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware(allowedOrigins))
	r.Use(middleware.CommonMiddleware())
	logger.SetupGin(r)

	requireAuth := middleware.AuthMiddleware(auth)
	optionalAuth := middleware.AuthOptionalMiddleware(auth)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			response.SuccessMsg(c, "pong", nil)
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/sign-up", group.UserHandler.SignUp)
			authGroup.POST("/sign-in", group.UserHandler.SignIn)
			authGroup.POST("/sign-out", requireAuth, group.UserHandler.SignOut)
			authGroup.GET("/me", optionalAuth, group.UserHandler.Me)
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("", group.PostHandler.ListPosts)

			authOptGroup := postGroup.Group("")
			authOptGroup.Use(optionalAuth)
			{
				authOptGroup.GET("/:post_id", group.PostHandler.GetPost)
				authOptGroup.GET("/:post_id/comments", group.CommentHandler.ListRootComments)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(requireAuth)
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
				authGroup.POST("/:post_id/thumbnail", group.PostHandler.UploadThumbnail)
				authGroup.POST("/:post_id/comments", group.CommentHandler.CreateComment)
				authGroup.POST("/:post_id/report", group.ReportHandler.ReportPost)

				// 旧客户端用 GET 切换，两种方法都保留
				authGroup.GET("/:post_id/like", group.PostActionHandler.LikePost)
				authGroup.POST("/:post_id/like", group.PostActionHandler.LikePost)
				authGroup.GET("/:post_id/save", group.PostActionHandler.SavePost)
				authGroup.POST("/:post_id/save", group.PostActionHandler.SavePost)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		commentGroup.Use(requireAuth)
		{
			commentGroup.GET("/:comment_id/replies", group.CommentHandler.ListReplies)
			commentGroup.DELETE("/:comment_id", group.CommentHandler.DeleteComment)
			commentGroup.GET("/:comment_id/like", group.PostActionHandler.LikeComment)
			commentGroup.POST("/:comment_id/like", group.PostActionHandler.LikeComment)
		}

		apiGroup.GET("/tags", group.TagHandler.ListTags)

		userGroup := apiGroup.Group("/users")
		{
			userGroup.GET("/:username/posts", group.PostHandler.ListPostsByUser)

			authGroup := userGroup.Group("")
			authGroup.Use(requireAuth)
			{
				authGroup.PUT("/me", group.UserHandler.UpdateProfile)
				authGroup.POST("/me/avatar", group.UserHandler.UploadAvatar)
				authGroup.GET("/:username", group.UserHandler.GetUserHome)
				authGroup.GET("/:username/follow", group.UserFollowHandler.Follow)
				authGroup.POST("/:username/follow", group.UserFollowHandler.Follow)
				authGroup.POST("/:username/report", group.ReportHandler.ReportUser)
			}
		}

		meGroup := apiGroup.Group("/me")
		meGroup.Use(requireAuth)
		{
			meGroup.GET("/liked", group.PostActionHandler.GetUserLikes)
			meGroup.GET("/saved", group.PostActionHandler.GetUserSaved)
		}

		if group.SysBoxHandler != nil {
			sysbox := apiGroup.Group("/notifications")
			sysbox.Use(requireAuth)
			{
				sysbox.GET("", group.SysBoxHandler.GetNotificationList)
				sysbox.GET("/unread", group.SysBoxHandler.GetUnreadCount)
				sysbox.POST("/read", group.SysBoxHandler.MarkRead)
				sysbox.POST("/read/all", group.SysBoxHandler.MarkAllRead)
			}
		}
	}

	return r
}
