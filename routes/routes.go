package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pulse-api/config"
	"pulse-api/controllers"
	"pulse-api/middleware"
	"pulse-api/repositories"
	"pulse-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService, storageService *services.StorageService) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	resolver := repositories.NewResolver(db)
	postRepo := repositories.NewPostRepository(db)
	likeRepo := repositories.NewLikeRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	notifier := services.NewNotifier(db, emailService)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, userRepo, resolver)
	userController := controllers.NewUserController(userRepo)
	postController := controllers.NewPostController(postRepo, userRepo, resolver)
	likeController := controllers.NewLikeController(likeRepo, postRepo, userRepo)
	commentController := controllers.NewCommentController(commentRepo, postRepo, userRepo, resolver, notifier)
	storageController := controllers.NewStorageController(storageService, cfg)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK", "message": "Backend is running"})
	})

	auth := middleware.AuthMiddleware(cfg.JWTSecret)

	// The whole surface historically lives under /api/auth, public routes
	// included.
	api := r.Group("/api/auth")
	{
		// Auth
		api.POST("/signup", authController.Signup)
		api.POST("/signin", authController.Signin)
		api.GET("/user", auth, authController.CurrentUser)

		// User directory
		api.GET("/users", userController.GetUsers)
		api.GET("/users/random", userController.GetRandomUsers)
		api.PUT("/user-data/:userId", userController.UpdateUserData)
		api.PUT("/user-data/:userId/display-name", userController.UpdateDisplayName)
		api.DELETE("/user-data/:userId", userController.DeleteUserData)

		// Posts
		api.GET("/posts", postController.GetPosts)
		api.POST("/posts", auth, postController.CreatePost)
		api.GET("/posts/count", postController.CountPosts)
		api.GET("/posts/trending", postController.GetTrending)
		api.GET("/posts/user/:userId", postController.GetPostsByUser)
		api.GET("/posts/:postId", postController.GetPost)
		api.PUT("/posts/:postId", postController.UpdatePost)
		api.DELETE("/posts/:postId", auth, postController.DeletePost)
		api.POST("/posts/:postId/pin", postController.PinPost)
		api.DELETE("/posts/:postId/pin", postController.UnpinPost)

		// Likes
		api.GET("/posts/:postId/like", auth, likeController.CheckLike)
		api.POST("/posts/:postId/like", auth, likeController.ToggleLike)
		api.GET("/posts/:postId/likes", likeController.GetPostLikes)

		// Comments
		api.GET("/posts/:postId/comments", commentController.GetComments)
		api.POST("/posts/:postId/comments", auth, commentController.CreateComment)
		api.GET("/comments/user/:userId", commentController.GetCommentsByUser)
		api.PUT("/comments/:commentId", auth, commentController.UpdateComment)
		api.DELETE("/comments/:commentId", auth, commentController.DeleteComment)

		// Storage
		api.GET("/storage/image/:fileName", storageController.GetImageURL)
		api.POST("/storage/image", auth, storageController.UploadImage)

		// Search
		api.GET("/search/posts", postController.SearchPosts)
		api.GET("/search/users", userController.SearchUsers)
	}
}
