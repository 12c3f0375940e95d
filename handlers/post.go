package handlers

import (
	"errors"

	"picpoints/database"
	"picpoints/models"
	"picpoints/reactions"
	"picpoints/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var blobStore storage.BlobStore

// InitPostHandlers wires the blob store the post handlers upload to.
func InitPostHandlers(store storage.BlobStore) {
	blobStore = store
}

// CreatePost uploads the attached image to blob storage and creates the
// post. The generated UUID is both the post id and the blob object key.
func CreatePost(c *fiber.Ctx) error {
	username := c.Locals("username").(string)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Adding img is required",
		})
	}

	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found.",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "There was an error while creating post " + err.Error(),
		})
	}
	defer file.Close()

	id := uuid.NewString()
	url, err := blobStore.Upload(c.UserContext(), id, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "There was an error while creating post " + err.Error(),
		})
	}

	post := models.Post{
		ID:       id,
		ImgURL:   url,
		Username: username,
		UserID:   user.ID,
	}
	if err := database.DB.Create(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "There was an error while creating post " + err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetAllPosts returns every post, newest first.
func GetAllPosts(c *fiber.Ctx) error {
	posts := []models.Post{}
	if err := database.DB.Preload("Reactions").Preload("Comments").Order("created_at desc").Find(&posts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	return c.JSON(posts)
}

// GetPost returns a single post by id (public).
func GetPost(c *fiber.Ctx) error {
	id := c.Params("id")

	var post models.Post
	if err := database.DB.Preload("Reactions").Preload("Comments").First(&post, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Post not found.",
		})
	}
	return c.JSON(post)
}

// DeletePost removes a post, its image blob, and everything cascading off
// it. Only the post owner may delete.
func DeletePost(c *fiber.Ctx) error {
	username := c.Locals("username").(string)
	id := c.Params("id")

	var post models.Post
	if err := database.DB.First(&post, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Post not found.",
		})
	}

	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found.",
		})
	}

	if post.UserID != user.ID {
		return c.SendStatus(fiber.StatusForbidden)
	}

	if err := blobStore.Destroy(c.UserContext(), post.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error while deleting post." + err.Error(),
		})
	}
	if err := database.DB.Delete(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error while deleting post." + err.Error(),
		})
	}

	return c.JSON(post)
}

// LikePost toggles the caller's like on the post.
func LikePost(c *fiber.Ctx) error {
	return react(c, models.ReactionLike)
}

// DislikePost toggles the caller's dislike on the post.
func DislikePost(c *fiber.Ctx) error {
	return react(c, models.ReactionDislike)
}

func react(c *fiber.Ctx, kind string) error {
	username := c.Locals("username").(string)
	id := c.Params("id")

	engine := reactions.NewEngine(database.DB)

	var post *models.Post
	var err error
	if kind == models.ReactionLike {
		post, err = engine.Like(c.UserContext(), id, username)
	} else {
		post, err = engine.Dislike(c.UserContext(), id, username)
	}

	switch {
	case errors.Is(err, reactions.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Post not found.",
		})
	case errors.Is(err, reactions.ErrOwnerNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found.",
		})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Unable to update " + kind + "s on post. " + err.Error(),
		})
	}

	return c.JSON(post)
}
