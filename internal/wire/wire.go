package wire

import (
	"Inkpost/internal/api"
	"Inkpost/internal/api/config"
	"Inkpost/internal/api/handler"
	"Inkpost/internal/api/middleware"
	"Inkpost/internal/pkg/kafka"
	"Inkpost/internal/pkg/mongo"
	"Inkpost/internal/repository"
	"Inkpost/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Gateway 鉴权网关，同时负责签发与注销令牌
type Gateway interface {
	middleware.Authenticator
	service.TokenIssuer
}

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router    *gin.Engine
	DB        *gorm.DB
	Publisher kafka.EventPublisher
}

// BuildApplication 组装 API 进程，notifications 为 nil 时不提供通知接口
func BuildApplication(
	db *gorm.DB,
	cfg *config.Config,
	store service.FileStore,
	gateway Gateway,
	publisher kafka.EventPublisher,
	notifications mongo.NotificationRepo,
) *ApplicationContainer {
	userRepo := repository.NewUserRepo(db)
	userFollowRepo := repository.NewUserFollowRepo(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepo(db)
	postActionRepo := repository.NewPostActionRepo(db)
	tagRepo := repository.NewTagRepository(db)
	reportRepo := repository.NewReportRepo(db)

	userService := service.NewUserService(userRepo, postRepo, userFollowRepo, gateway, store)
	userFollowService := service.NewUserFollowService(userFollowRepo, userRepo, publisher)
	postService := service.NewPostService(postRepo, commentRepo, postActionRepo, userRepo, store)
	postActionService := service.NewPostActionService(postActionRepo, postRepo, store, publisher)
	commentService := service.NewCommentService(commentRepo, postRepo, store, publisher, cfg.Server.Location())
	tagService := service.NewTagService(tagRepo)
	reportService := service.NewReportService(reportRepo, postRepo, userRepo)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService),
		UserFollowHandler: handler.NewUserFollowHandler(userFollowService),
		PostHandler:       handler.NewPostHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(postActionService),
		CommentHandler:    handler.NewCommentHandler(commentService),
		TagHandler:        handler.NewTagHandler(tagService),
		ReportHandler:     handler.NewReportHandler(reportService),
	}
	if notifications != nil {
		handlers.SysBoxHandler = handler.NewSysBoxHandler(service.NewSysBoxService(notifications, userRepo, store))
	}

	router := api.SetupRouter(handlers, gateway, cfg.Server.AllowedOrigins)

	return &ApplicationContainer{
		Router:    router,
		DB:        db,
		Publisher: publisher,
	}
}
