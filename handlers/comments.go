package handlers

import (
	"picpoints/database"
	"picpoints/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CommentRequest struct {
	Comment string `json:"comment"`
}

// CreateComment appends a comment to a post. Comments keep insertion order.
func CreateComment(c *fiber.Ctx) error {
	username := c.Locals("username").(string)
	postID := c.Params("postId")

	req := new(CommentRequest)
	if err := c.BodyParser(req); err != nil || req.Comment == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Comment is required.",
		})
	}

	var post models.Post
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
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

	comment := models.Comment{
		ID:       uuid.NewString(),
		PostID:   post.ID,
		UserID:   user.ID,
		Username: username,
		Text:     req.Comment,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Unable to update post.",
		})
	}

	return respondWithPost(c, postID)
}

// GetComments lists a post's comments in insertion order.
func GetComments(c *fiber.Ctx) error {
	postID := c.Params("postId")

	var post models.Post
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Post not found.",
		})
	}

	comments := []models.Comment{}
	if err := database.DB.Where("post_id = ?", postID).Order("created_at asc").Find(&comments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	return c.JSON(comments)
}

// UpdateComment edits a comment's text in place.
func UpdateComment(c *fiber.Ctx) error {
	postID := c.Params("postId")
	commentID := c.Params("commentId")

	req := new(CommentRequest)
	if err := c.BodyParser(req); err != nil || req.Comment == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Comment is required.",
		})
	}

	var post models.Post
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Post not found.",
		})
	}

	var comment models.Comment
	if err := database.DB.Where("id = ? AND post_id = ?", commentID, postID).First(&comment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Comment not found.",
		})
	}

	comment.Text = req.Comment
	if err := database.DB.Save(&comment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return respondWithPost(c, postID)
}

// DeleteComment removes a comment. Only the comment's author may remove it.
func DeleteComment(c *fiber.Ctx) error {
	username := c.Locals("username").(string)
	postID := c.Params("postId")
	commentID := c.Params("commentId")

	var post models.Post
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Post not found.",
		})
	}

	var comment models.Comment
	if err := database.DB.Where("id = ? AND post_id = ?", commentID, postID).First(&comment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Comment not found.",
		})
	}

	var requester models.User
	if err := database.DB.Where("username = ?", username).First(&requester).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found.",
		})
	}

	if comment.UserID != requester.ID {
		return c.SendStatus(fiber.StatusForbidden)
	}

	if err := database.DB.Delete(&comment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return respondWithPost(c, postID)
}

// respondWithPost returns the post with reactions and comments loaded.
func respondWithPost(c *fiber.Ctx, postID string) error {
	var post models.Post
	if err := database.DB.Preload("Reactions").Preload("Comments").First(&post, "id = ?", postID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	return c.JSON(post)
}
