package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"picpoints/auth"
	"picpoints/config"
	"picpoints/database"
	"picpoints/handlers"
	"picpoints/middleware"
	"picpoints/models"
	"picpoints/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testConfig = &config.Config{
	AccessTokenSecret:  "test-access-secret",
	RefreshTokenSecret: "test-refresh-secret",
}

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Reaction{}, &models.Comment{}))
	return db
}

// setupTestApp wires a fresh app with the real route table and auth gate.
func setupTestApp(t *testing.T) *fiber.App {
	database.DB = setupTestDB(t)
	handlers.InitAuthHandlers(testConfig)
	handlers.InitPostHandlers(&fakeBlobStore{})
	middleware.InitMiddleware(testConfig)

	app := fiber.New()
	routes.Setup(app)
	return app
}

// fakeBlobStore records uploads and destroys in memory.
type fakeBlobStore struct {
	uploaded  []string
	destroyed []string
	failNext  bool
}

func (f *fakeBlobStore) Upload(_ context.Context, id string, _ io.Reader, _ int64, _ string) (string, error) {
	if f.failNext {
		return "", io.ErrUnexpectedEOF
	}
	f.uploaded = append(f.uploaded, id)
	return "http://blobs.test/" + id, nil
}

func (f *fakeBlobStore) Destroy(_ context.Context, id string) error {
	if f.failNext {
		return io.ErrUnexpectedEOF
	}
	f.destroyed = append(f.destroyed, id)
	return nil
}

// createUser inserts a user with a bcrypt-hashed password.
func createUser(t *testing.T, username, password string) *models.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	require.NoError(t, err)

	user := &models.User{
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
		Email:     username + "@example.com",
		Password:  string(hashed),
	}
	require.NoError(t, database.DB.Create(user).Error)
	return user
}

// createPost inserts a post owned by the given user.
func createPost(t *testing.T, id string, owner *models.User) *models.Post {
	post := &models.Post{
		ID:       id,
		ImgURL:   "http://blobs.test/" + id,
		Username: owner.Username,
		UserID:   owner.ID,
	}
	require.NoError(t, database.DB.Create(post).Error)
	return post
}

// authHeader mints a valid bearer header for the username.
func authHeader(t *testing.T, username string) string {
	token, err := auth.NewTokenService(testConfig).SignAccess(username, auth.AccessTokenTTL)
	require.NoError(t, err)
	return "Bearer " + token
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// multipartImage builds a multipart body with an "image" file part.
func multipartImage(t *testing.T) (*bytes.Buffer, string) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile("image", "picture.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-image-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}
