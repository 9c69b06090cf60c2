package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"lark-inventory-be/internal/constant"
	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/pkg/serverutils"
	"lark-inventory-be/internal/repository/contract"
	"lark-inventory-be/pkg/rag/composer"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

type stubChatService struct {
	askedUserId string
	askedQuery  string
	clearedFor  string
}

func (s *stubChatService) Greeting() string {
	return constant.ChatGreetingMessage
}

func (s *stubChatService) Ask(ctx context.Context, userId, query string) ([]composer.UIBlock, error) {
	s.askedUserId = userId
	s.askedQuery = query
	return []composer.UIBlock{composer.TextBlock("two employees")}, nil
}

func (s *stubChatService) Clear(ctx context.Context, userId string) error {
	s.clearedFor = userId
	return nil
}

type stubRegistry struct {
	descriptors []*entity.SchemaEmbedding
}

func (s *stubRegistry) SeedAll(ctx context.Context) error      { return nil }
func (s *stubRegistry) EnsureSeeded(ctx context.Context) error { return nil }
func (s *stubRegistry) Upsert(ctx context.Context, tableName, document, description string) error {
	return nil
}
func (s *stubRegistry) EmbedAndStore(ctx context.Context, tableName string) error { return nil }
func (s *stubRegistry) ClearAll(ctx context.Context) error                        { return nil }
func (s *stubRegistry) Search(ctx context.Context, query string, k int) []*contract.ScoredSchemaEmbedding {
	return nil
}
func (s *stubRegistry) ListDescriptors(ctx context.Context) ([]*entity.SchemaEmbedding, error) {
	return s.descriptors, nil
}

func newChatTestApp(chat *stubChatService, registry *stubRegistry) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: serverutils.NewErrorHandler(testLogger{}),
	})
	api := app.Group("/api")
	NewChatController(chat, registry, testSecret).RegisterRoutes(api)
	return app
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestChatRequiresToken(t *testing.T) {
	app := newChatTestApp(&stubChatService{}, &stubRegistry{})

	req := httptest.NewRequest("GET", "/api/chat/", nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestChatRejectsBadToken(t *testing.T) {
	app := newChatTestApp(&stubChatService{}, &stubRegistry{})

	req := httptest.NewRequest("GET", "/api/chat/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestChatRejectsTokenWithoutUserId(t *testing.T) {
	app := newChatTestApp(&stubChatService{}, &stubRegistry{})

	req := httptest.NewRequest("GET", "/api/chat/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, jwt.MapClaims{"sub": "x"}))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestChatGreeting(t *testing.T) {
	app := newChatTestApp(&stubChatService{}, &stubRegistry{})

	req := httptest.NewRequest("GET", "/api/chat/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, jwt.MapClaims{"user_id": "u-1"}))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, constant.ChatGreetingMessage, body["message"])
}

func TestChatAskRoutesUserIdFromToken(t *testing.T) {
	chat := &stubChatService{}
	app := newChatTestApp(chat, &stubRegistry{})

	req := httptest.NewRequest("POST", "/api/chat/", strings.NewReader(`{"query": "how many employees"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signedToken(t, jwt.MapClaims{"user_id": "u-42"}))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "u-42", chat.askedUserId)
	assert.Equal(t, "how many employees", chat.askedQuery)
}

func TestChatAskValidation(t *testing.T) {
	app := newChatTestApp(&stubChatService{}, &stubRegistry{})

	req := httptest.NewRequest("POST", "/api/chat/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signedToken(t, jwt.MapClaims{"user_id": "u-1"}))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestChatClear(t *testing.T) {
	chat := &stubChatService{}
	app := newChatTestApp(chat, &stubRegistry{})

	req := httptest.NewRequest("POST", "/api/chat/clear", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, jwt.MapClaims{"user_id": "u-7"}))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "u-7", chat.clearedFor)
}

func TestChatListSchemas(t *testing.T) {
	registry := &stubRegistry{descriptors: []*entity.SchemaEmbedding{
		{TableName_: "employees", Document: "Table: employees.", Description: "Employee records."},
	}}
	app := newChatTestApp(&stubChatService{}, registry)

	req := httptest.NewRequest("GET", "/api/chat/vectors/schemas", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, jwt.MapClaims{"user_id": "u-1"}))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 1)
	assert.Equal(t, "employees", body[0]["table_name"])
}
