package api

import (
	"Blogicum/internal/api/config"
	"Blogicum/internal/api/middleware"
	"Blogicum/internal/pkg/consts"
	"Blogicum/internal/pkg/logger"
	"Blogicum/internal/pkg/util"
	"Blogicum/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, blacklist service.TokenBlacklist, cfg *config.Config) *gin.Engine {
	util.RegisterGinValidation()

	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowOrigins))
	logger.SetupGin(r, cfg.Logstash)

	auth := middleware.AuthMiddleware(blacklist)
	authOpt := middleware.AuthOptionalMiddleware(blacklist)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.GET("/profile/:username", authOpt, group.UserHandler.GetProfile)

			authGroup := userGroup.Group("")
			authGroup.Use(auth)
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/profile", group.UserHandler.GetSelf)
				authGroup.PUT("/profile", group.UserHandler.UpdateProfile)
			}

			// 需要登录 & 拥有 admin 角色
			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.DELETE("/:user_id", group.UserHandler.DeleteUser)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(authOpt)
			{
				authOptGroup.GET("", group.PostHandler.ListPosts)
				authOptGroup.GET("/:post_id", group.PostHandler.GetPost)
				authOptGroup.GET("/:post_id/comments", group.CommentHandler.ListComments)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(auth)
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)

				authGroup.POST("/:post_id/comments", group.CommentHandler.CreateComment)
				authGroup.PUT("/:post_id/comments/:comment_id", group.CommentHandler.UpdateComment)
				authGroup.DELETE("/:post_id/comments/:comment_id", group.CommentHandler.DeleteComment)
			}
		}

		categoryGroup := apiGroup.Group("/category")
		categoryGroup.Use(authOpt)
		{
			categoryGroup.GET("/:slug", group.PostHandler.ListCategoryPosts)
			categoryGroup.GET("/:slug/info", group.CategoryHandler.GetCategory)
		}

		profileGroup := apiGroup.Group("/profile")
		profileGroup.Use(authOpt)
		{
			profileGroup.GET("/:username/posts", group.PostHandler.ListProfilePosts)
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.Use(auth)
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(auth, middleware.CheckRoles(consts.RoleAdmin))
		{
			adminGroup.GET("/categories", group.CategoryHandler.ListCategories)
			adminGroup.POST("/categories", group.CategoryHandler.CreateCategory)
			adminGroup.PUT("/categories/:id", group.CategoryHandler.UpdateCategory)
			adminGroup.DELETE("/categories/:id", group.CategoryHandler.DeleteCategory)

			adminGroup.GET("/locations", group.CategoryHandler.ListLocations)
			adminGroup.POST("/locations", group.CategoryHandler.CreateLocation)
			adminGroup.PUT("/locations/:id", group.CategoryHandler.UpdateLocation)
			adminGroup.DELETE("/locations/:id", group.CategoryHandler.DeleteLocation)
		}
	}

	return r
}
