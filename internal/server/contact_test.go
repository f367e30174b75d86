package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/jvrel/portfolio/internal/clock"
	"github.com/jvrel/portfolio/internal/config"
	contactdomain "github.com/jvrel/portfolio/internal/contact/domain"
	contactrepository "github.com/jvrel/portfolio/internal/contact/repository"
	contactservice "github.com/jvrel/portfolio/internal/contact/service"
	"github.com/jvrel/portfolio/internal/providers/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type noopMailer struct{}

func (noopMailer) Enabled() bool { return false }

func (noopMailer) Send(ctx context.Context, subject, textBody string) error { return nil }

type failingMailer struct{}

func (failingMailer) Enabled() bool { return true }

func (failingMailer) Send(ctx context.Context, subject, textBody string) error {
	return errors.New("smtp handshake: connection reset")
}

func setupEngine(t *testing.T, svc contactdomain.Service, adminKey string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	engine := NewEngine(log)
	srv := NewServer(Params{
		Engine:     engine,
		Cfg:        config.Config{AdminKey: adminKey},
		Log:        log,
		ContactSvc: svc,
	})
	srv.RegisterRoutes()
	return engine
}

func setupContactService(t *testing.T, mailer email.Provider) contactdomain.Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&contactdomain.ContactSubmission{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return contactservice.New(contactservice.Params{
		DB:     db,
		Log:    zap.NewNop(),
		GenID:  node,
		Clock:  clock.NewSystem(),
		Repo:   contactrepository.Provide(),
		Mailer: mailer,
	})
}

func postContact(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "go-test/1.0")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestSubmitContactSuccessWithoutMailConfig(t *testing.T) {
	engine := setupEngine(t, setupContactService(t, noopMailer{}), "")

	w := postContact(engine, `{"name":"Ada Lovelace","email":"Ada@Example.com","message":"I would like to talk about a project."}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, false, body["emailSent"])

	// emailError must be present and null when nothing was attempted.
	raw, ok := body["emailError"]
	assert.True(t, ok)
	assert.Nil(t, raw)
}

func TestSubmitContactNotificationFailureStillSucceeds(t *testing.T) {
	engine := setupEngine(t, setupContactService(t, failingMailer{}), "")

	w := postContact(engine, `{"name":"Ada Lovelace","email":"ada@example.com","message":"I would like to talk about a project."}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["emailSent"])
	assert.Contains(t, body["emailError"], "connection reset")
}

func TestSubmitContactValidationResponses(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing fields", `{"name":"","email":"","message":""}`, "All fields are required"},
		{"malformed body", `{not json`, "All fields are required"},
		{"invalid email", `{"name":"Ada","email":"not-an-email","message":"long enough message here"}`, "Invalid email format"},
		{"short name", `{"name":"A","email":"a@b.co","message":"long enough message here"}`, "Name must be at least 2 characters long"},
		{"short message", `{"name":"Ada","email":"a@b.co","message":"short"}`, "Message must be at least 10 characters long"},
		{"long message", fmt.Sprintf(`{"name":"Ada","email":"a@b.co","message":"%s"}`, strings.Repeat("x", 5001)), "Message too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := setupEngine(t, setupContactService(t, noopMailer{}), "")
			w := postContact(engine, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantMsg, decodeBody(t, w)["error"])
		})
	}
}

func TestSubmitContactIgnoresExtraFields(t *testing.T) {
	engine := setupEngine(t, setupContactService(t, noopMailer{}), "")

	// The client honeypot travels as an extra field and must be ignored.
	w := postContact(engine, `{"name":"Ada","email":"ada@example.com","message":"I would like to talk about a project.","website":"spam-bait"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitContactRateLimited(t *testing.T) {
	engine := setupEngine(t, setupContactService(t, noopMailer{}), "")
	payload := `{"name":"Ada","email":"ada@example.com","message":"I would like to talk about a project."}`

	first := postContact(engine, payload)
	require.Equal(t, http.StatusOK, first.Code)

	second := postContact(engine, payload)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "Please wait a moment before sending another message", decodeBody(t, second)["error"])
}

type unavailableService struct{}

func (unavailableService) Submit(ctx context.Context, req contactdomain.SubmitRequest) (contactdomain.SubmitResponse, error) {
	return contactdomain.SubmitResponse{}, contactdomain.ErrStorageUnavailable
}

func (unavailableService) List(ctx context.Context, req contactdomain.ListRequest) ([]contactdomain.ContactSubmission, error) {
	return nil, contactdomain.ErrStorageUnavailable
}

func TestSubmitContactStorageUnavailable(t *testing.T) {
	engine := setupEngine(t, unavailableService{}, "")

	w := postContact(engine, `{"name":"Ada","email":"ada@example.com","message":"I would like to talk about a project."}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Database connection error. Please try again later.", decodeBody(t, w)["error"])
}

func TestListContactsAuthorization(t *testing.T) {
	svc := setupContactService(t, noopMailer{})
	engine := setupEngine(t, svc, "sekrit")

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", decodeBody(t, w)["error"])

	req = httptest.NewRequest(http.MethodGet, "/api/contact?key=wrong", nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	req.Header.Set("X-Admin-Key", "sekrit")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListContactsRejectsAllWhenKeyUnset(t *testing.T) {
	engine := setupEngine(t, setupContactService(t, noopMailer{}), "")

	req := httptest.NewRequest(http.MethodGet, "/api/contact?key=", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListContactsRoundTrip(t *testing.T) {
	svc := setupContactService(t, noopMailer{})
	engine := setupEngine(t, svc, "sekrit")

	post := postContact(engine, `{"name":"  Ada Lovelace ","email":" Ada@Example.COM ","message":"I would like to talk about a project."}`)
	require.Equal(t, http.StatusOK, post.Code)
	submittedID := decodeBody(t, post)["id"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/contact?key=sekrit", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Messages []struct {
			ID        string `json:"id"`
			Name      string `json:"name"`
			Email     string `json:"email"`
			Message   string `json:"message"`
			CreatedAt string `json:"createdAt"`
			Read      bool   `json:"read"`
			IP        string `json:"ip"`
			UserAgent string `json:"userAgent"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Messages, 1)

	msg := out.Messages[0]
	assert.Equal(t, submittedID, msg.ID)
	assert.Equal(t, "Ada Lovelace", msg.Name)
	assert.Equal(t, "ada@example.com", msg.Email)
	assert.Equal(t, "I would like to talk about a project.", msg.Message)
	assert.False(t, msg.Read)
	assert.Equal(t, "go-test/1.0", msg.UserAgent)

	created, err := time.Parse(time.RFC3339, msg.CreatedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), created, time.Minute)
}
