package router

import (
	"log"
	"time"

	"spotter/config"
	"spotter/internal/handler"
	"spotter/internal/middleware"
	"spotter/internal/repository"
	"spotter/internal/service"
	"spotter/internal/ws"
	"spotter/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	pushRepo := repository.NewPushSettingRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)

	feedHub := ws.NewHub()

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	fcmSvc := service.NewFCMService(cfg.Firebase.ServiceAccountPath)
	if fcmSvc != nil {
		log.Printf("[FCM] Push notifications enabled")
	} else {
		log.Printf("[FCM] Push notifications disabled: set FIREBASE_SERVICE_ACCOUNT_PATH to enable")
	}
	pushSvc := service.NewPushService(pushRepo)
	notifSvc := service.NewNotificationService(notificationRepo, userRepo, pushRepo, fcmSvc, feedHub)
	relSvc := service.NewRelationshipService(friendRepo, userRepo, notificationRepo, notifSvc, feedHub, cfg.Social.PokeCooldown)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, pushSvc)
	googleOAuthHandler := handler.NewGoogleOAuthHandler(cfg, authSvc)
	meHandler := handler.NewMeHandler(userRepo, pushSvc, cloud)
	userHandler := handler.NewUserHandler(userRepo, relSvc)
	friendHandler := handler.NewFriendHandler(relSvc, friendRepo, userRepo)
	notificationHandler := handler.NewNotificationHandler(notificationRepo, userRepo)
	postHandler := handler.NewPostHandler(postRepo, commentRepo, likeRepo, friendRepo, workoutRepo, cloud, cfg.Social.FeedPageSize)
	commentHandler := handler.NewCommentHandler(commentRepo, postRepo, userRepo, notifSvc)
	likeHandler := handler.NewLikeHandler(likeRepo, postRepo, commentRepo, userRepo, notifSvc)
	workoutHandler := handler.NewWorkoutHandler(workoutRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authMw, authHandler.Logout)
			authGroup.GET("/google", googleOAuthHandler.Redirect)
			authGroup.GET("/google/callback", googleOAuthHandler.Callback)
			authGroup.POST("/google/token", googleOAuthHandler.Token)
		}

		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("/profile", meHandler.GetProfile)
			me.PATCH("/profile", meHandler.UpdateProfile)
			me.POST("/avatar", meHandler.UploadAvatar)
			me.GET("/notifications", notificationHandler.List)
			me.GET("/notifications/unread", notificationHandler.Unread)
			me.POST("/notifications/checked", meHandler.MarkNotificationsChecked)
			me.POST("/push-token", meHandler.SyncPushToken)
			me.PATCH("/push-settings", meHandler.UpdatePushSettings)
			me.GET("/friends", friendHandler.ListFriends)
			me.GET("/friend-requests", friendHandler.ListRequests)
			me.GET("/workouts", workoutHandler.Month)
			me.POST("/workouts/rest", workoutHandler.MarkRest)
		}

		users := api.Group("/users")
		users.Use(authMw)
		{
			users.GET("/search", userHandler.Search)
			users.GET("/:id", userHandler.GetProfile)
		}

		friends := api.Group("/friends")
		friends.Use(authMw)
		{
			friends.POST("/requests", friendHandler.CreateRequest)
			friends.POST("/requests/accept", friendHandler.AcceptRequest)
			friends.POST("/requests/refuse", friendHandler.RefuseRequest)
			friends.DELETE("/:user_id", friendHandler.Unfriend)
			friends.POST("/:user_id/poke", friendHandler.Poke)
			friends.GET("/:user_id/status", friendHandler.Status)
		}

		posts := api.Group("/posts")
		posts.Use(authMw)
		{
			posts.POST("", postHandler.Create)
			posts.GET("/feed", postHandler.Feed)
			posts.GET("/:id", postHandler.Get)
			posts.DELETE("/:id", postHandler.Delete)
			posts.POST("/:id/like", likeHandler.LikePost)
			posts.DELETE("/:id/like", likeHandler.UnlikePost)
			posts.GET("/:id/comments", commentHandler.List)
			posts.POST("/:id/comments", commentHandler.Create)
		}

		comments := api.Group("/comments")
		comments.Use(authMw)
		{
			comments.POST("/:id/like", likeHandler.LikeComment)
			comments.DELETE("/:id/like", likeHandler.UnlikeComment)
			comments.DELETE("/:id", commentHandler.Delete)
		}
	}

	// Realtime feed: one subscription per connection, closed with it.
	r.GET("/ws/feed", ws.UpgradeFeed(&cfg.JWT, feedHub))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
