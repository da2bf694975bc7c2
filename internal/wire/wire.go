package wire

import (
	"Blogicum/internal/api"
	"Blogicum/internal/api/config"
	"Blogicum/internal/api/handler"
	"Blogicum/internal/job"
	"Blogicum/internal/pkg/cron"
	"Blogicum/internal/repository"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router      *gin.Engine
	DB          *gorm.DB
	CronManager *cron.Manager
}

// Infra 外部存储依赖，生产环境为 MinIO/Redis 实现
type Infra struct {
	MediaStore service.MediaStore
	Blacklist  service.TokenBlacklist
}

func BuildApplication(db *gorm.DB, cfg *config.Config, infra Infra) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	locationRepo := repository.NewLocationRepository(db)

	mediaService := service.NewMediaService(infra.MediaStore, cfg.Blog.MaxImageSide, cfg.Blog.MaxImageMB)
	userService := service.NewUserService(userRepo, infra.Blacklist, mediaService)
	postService := service.NewPostService(postRepo, commentRepo, userRepo, categoryRepo, locationRepo, mediaService)
	commentService := service.NewCommentService(postRepo, commentRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	locationService := service.NewLocationService(locationRepo)

	handlers := &api.HandlersGroup{
		UserHandler:     handler.NewUserHandler(userService),
		PostHandler:     handler.NewPostHandler(postService),
		CommentHandler:  handler.NewCommentHandler(commentService),
		CategoryHandler: handler.NewCategoryHandler(categoryService, locationService),
		MediaHandler:    handler.NewMediaHandler(mediaService),
	}

	router := api.SetupRouter(handlers, infra.Blacklist, cfg)

	cronMgr := cron.NewCronManager(job.NewMediaCleanupJob(mediaService))

	return &ApplicationContainer{
		Router:      router,
		DB:          db,
		CronManager: cronMgr,
	}, nil
}
