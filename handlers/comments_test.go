package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"picpoints/database"
	"picpoints/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	app := setupTestApp(t)
	owner := createUser(t, "alice", "password123")
	createUser(t, "bob", "password123")
	createPost(t, "post-1", owner)

	t.Run("empty comment", func(t *testing.T) {
		req := jsonRequest("POST", "/posts/post-1/comments", map[string]string{"comment": ""})
		req.Header.Set("Authorization", authHeader(t, "bob"))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("post not found", func(t *testing.T) {
		req := jsonRequest("POST", "/posts/missing/comments", map[string]string{"comment": "hi"})
		req.Header.Set("Authorization", authHeader(t, "bob"))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("appends comment", func(t *testing.T) {
		req := jsonRequest("POST", "/posts/post-1/comments", map[string]string{"comment": "nice shot"})
		req.Header.Set("Authorization", authHeader(t, "bob"))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var comment models.Comment
		require.NoError(t, database.DB.Where("post_id = ?", "post-1").First(&comment).Error)
		assert.Equal(t, "nice shot", comment.Text)
		assert.Equal(t, "bob", comment.Username)
		assert.NotEmpty(t, comment.ID)
	})
}

func TestGetComments_InsertionOrder(t *testing.T) {
	app := setupTestApp(t)
	owner := createUser(t, "alice", "password123")
	createUser(t, "bob", "password123")
	createPost(t, "post-1", owner)

	for _, text := range []string{"first", "second", "third"} {
		req := jsonRequest("POST", "/posts/post-1/comments", map[string]string{"comment": text})
		req.Header.Set("Authorization", authHeader(t, "bob"))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	req := httptest.NewRequest("GET", "/posts/post-1/comments", nil)
	req.Header.Set("Authorization", authHeader(t, "bob"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var comments []models.Comment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&comments))
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "second", comments[1].Text)
	assert.Equal(t, "third", comments[2].Text)
}

func TestGetComments_PostNotFound(t *testing.T) {
	app := setupTestApp(t)
	createUser(t, "bob", "password123")

	req := httptest.NewRequest("GET", "/posts/missing/comments", nil)
	req.Header.Set("Authorization", authHeader(t, "bob"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateComment(t *testing.T) {
	app := setupTestApp(t)
	owner := createUser(t, "alice", "password123")
	bob := createUser(t, "bob", "password123")
	createPost(t, "post-1", owner)

	comment := models.Comment{
		ID: "comment-1", PostID: "post-1", UserID: bob.ID, Username: "bob", Text: "original",
	}
	require.NoError(t, database.DB.Create(&comment).Error)

	t.Run("comment not found", func(t *testing.T) {
		req := jsonRequest("PUT", "/posts/post-1/comments/missing", map[string]string{"comment": "edited"})
		req.Header.Set("Authorization", authHeader(t, "bob"))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("edits text in place", func(t *testing.T) {
		req := jsonRequest("PUT", "/posts/post-1/comments/comment-1", map[string]string{"comment": "edited"})
		req.Header.Set("Authorization", authHeader(t, "bob"))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var updated models.Comment
		require.NoError(t, database.DB.First(&updated, "id = ?", "comment-1").Error)
		assert.Equal(t, "edited", updated.Text)
	})
}

func TestDeleteComment_Ownership(t *testing.T) {
	app := setupTestApp(t)
	owner := createUser(t, "alice", "password123")
	bob := createUser(t, "bob", "password123")
	createPost(t, "post-1", owner)

	comment := models.Comment{
		ID: "comment-1", PostID: "post-1", UserID: bob.ID, Username: "bob", Text: "mine",
	}
	require.NoError(t, database.DB.Create(&comment).Error)

	t.Run("non-author is forbidden", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/posts/post-1/comments/comment-1", nil)
		req.Header.Set("Authorization", authHeader(t, "alice"))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("author removes the comment", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/posts/post-1/comments/comment-1", nil)
		req.Header.Set("Authorization", authHeader(t, "bob"))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		// Gone from subsequent listings.
		listReq := httptest.NewRequest("GET", "/posts/post-1/comments", nil)
		listReq.Header.Set("Authorization", authHeader(t, "bob"))
		listResp, err := app.Test(listReq, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, listResp.StatusCode)

		var comments []models.Comment
		require.NoError(t, json.NewDecoder(listResp.Body).Decode(&comments))
		assert.Empty(t, comments)
	})

	t.Run("already removed", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/posts/post-1/comments/comment-1", nil)
		req.Header.Set("Authorization", authHeader(t, "bob"))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
