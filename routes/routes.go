package routes

import (
	"picpoints/handlers"
	"picpoints/middleware"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "picpoints API",
			"version": "1.0.0",
		})
	})

	// User routes
	users := app.Group("/users")
	users.Post("/register", handlers.Register)
	users.Post("/login", handlers.Login)
	users.Post("/logout", middleware.AuthRequired, handlers.Logout)
	users.Get("/refresh", handlers.Refresh)
	users.Get("/top-users/:top", middleware.AuthRequired, handlers.GetTopUsers)
	users.Get("/:username", middleware.AuthRequired, handlers.GetUserProfile)
	users.Delete("/", middleware.AuthRequired, handlers.DeleteUser)

	// Post routes
	posts := app.Group("/posts")
	posts.Get("/", middleware.AuthRequired, handlers.GetAllPosts)
	posts.Post("/", middleware.AuthRequired, handlers.CreatePost)
	posts.Get("/:id", handlers.GetPost)
	posts.Delete("/:id", middleware.AuthRequired, handlers.DeletePost)
	posts.Put("/:id/like", middleware.AuthRequired, handlers.LikePost)
	posts.Put("/:id/dislike", middleware.AuthRequired, handlers.DislikePost)

	// Comment routes
	posts.Post("/:postId/comments", middleware.AuthRequired, handlers.CreateComment)
	posts.Get("/:postId/comments", middleware.AuthRequired, handlers.GetComments)
	posts.Put("/:postId/comments/:commentId", middleware.AuthRequired, handlers.UpdateComment)
	posts.Delete("/:postId/comments/:commentId", middleware.AuthRequired, handlers.DeleteComment)
}
