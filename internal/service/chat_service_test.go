package service

import (
	"context"
	"errors"
	"testing"

	"lark-inventory-be/internal/constant"
	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/pkg/serverutils"
	"lark-inventory-be/internal/repository/contract"
	"lark-inventory-be/internal/repository/specification"
	"lark-inventory-be/internal/repository/unitofwork"
	"lark-inventory-be/pkg/llm"
	"lark-inventory-be/pkg/sqlguard"

	"github.com/stretchr/testify/assert"
)

// ---- fakes ----

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeHistoryRepo struct {
	turns   map[string][]contract.ChatTurn
	getErr  error
	cleared []string
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{turns: map[string][]contract.ChatTurn{}}
}

func (f *fakeHistoryRepo) Get(ctx context.Context, userId string) ([]contract.ChatTurn, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.turns[userId], nil
}

func (f *fakeHistoryRepo) Append(ctx context.Context, userId string, turns ...contract.ChatTurn) error {
	f.turns[userId] = append(f.turns[userId], turns...)
	return nil
}

func (f *fakeHistoryRepo) Clear(ctx context.Context, userId string) error {
	f.cleared = append(f.cleared, userId)
	delete(f.turns, userId)
	return nil
}

type fakeRegistry struct {
	matches []*contract.ScoredSchemaEmbedding
}

func (f *fakeRegistry) SeedAll(ctx context.Context) error      { return nil }
func (f *fakeRegistry) EnsureSeeded(ctx context.Context) error { return nil }
func (f *fakeRegistry) Upsert(ctx context.Context, tableName, document, description string) error {
	return nil
}
func (f *fakeRegistry) EmbedAndStore(ctx context.Context, tableName string) error { return nil }
func (f *fakeRegistry) ClearAll(ctx context.Context) error                        { return nil }
func (f *fakeRegistry) Search(ctx context.Context, query string, k int) []*contract.ScoredSchemaEmbedding {
	return f.matches
}
func (f *fakeRegistry) ListDescriptors(ctx context.Context) ([]*entity.SchemaEmbedding, error) {
	return nil, nil
}

type fakeLLM struct {
	chatResponse     string
	chatErr          error
	generateResponse string
	generateErr      error
	lastHistory      []llm.Message
	lastPrompt       string
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.lastHistory = history
	return f.chatResponse, f.chatErr
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.lastPrompt = prompt
	return f.generateResponse, f.generateErr
}

type fakeSQLQueryRepo struct {
	rows    []map[string]any
	err     error
	lastSQL string
}

func (f *fakeSQLQueryRepo) Execute(ctx context.Context, query string) ([]map[string]any, error) {
	f.lastSQL = query
	return f.rows, f.err
}

type fakeChatQueryLogRepo struct {
	records []*entity.ChatQueryLog
}

func (f *fakeChatQueryLogRepo) Create(ctx context.Context, log *entity.ChatQueryLog) error {
	f.records = append(f.records, log)
	return nil
}

func (f *fakeChatQueryLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatQueryLog, error) {
	return f.records, nil
}

type fakeUnitOfWork struct {
	sqlRepo    *fakeSQLQueryRepo
	logRepo    *fakeChatQueryLogRepo
	schemaRepo *fakeSchemaEmbeddingRepo
	deptRepo   *fakeDepartmentRepo
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                   { return nil }
func (f *fakeUnitOfWork) Rollback() error                 { return nil }

func (f *fakeUnitOfWork) DepartmentRepository() contract.DepartmentRepository           { return f.deptRepo }
func (f *fakeUnitOfWork) EmployeeRepository() contract.EmployeeRepository               { return nil }
func (f *fakeUnitOfWork) ProductRepository() contract.ProductRepository                 { return nil }
func (f *fakeUnitOfWork) BatchRepository() contract.BatchRepository                     { return nil }
func (f *fakeUnitOfWork) BatchTrackingRepository() contract.BatchTrackingRepository     { return nil }
func (f *fakeUnitOfWork) AssetRepository() contract.AssetRepository                     { return nil }
func (f *fakeUnitOfWork) AssetVendorLinkRepository() contract.AssetVendorLinkRepository { return nil }
func (f *fakeUnitOfWork) MaintenanceLogRepository() contract.MaintenanceLogRepository   { return nil }
func (f *fakeUnitOfWork) VendorRepository() contract.VendorRepository                   { return nil }
func (f *fakeUnitOfWork) SchemaEmbeddingRepository() contract.SchemaEmbeddingRepository {
	return f.schemaRepo
}
func (f *fakeUnitOfWork) ChatQueryLogRepository() contract.ChatQueryLogRepository       { return f.logRepo }
func (f *fakeUnitOfWork) SQLQueryRepository() contract.SQLQueryRepository               { return f.sqlRepo }

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

// ---- helpers ----

func schemaMatch(table, document string) *contract.ScoredSchemaEmbedding {
	return &contract.ScoredSchemaEmbedding{
		Embedding: &entity.SchemaEmbedding{TableName_: table, Document: document},
		Distance:  0.1,
	}
}

type chatFixture struct {
	service IChatService
	history *fakeHistoryRepo
	llm     *fakeLLM
	sqlRepo *fakeSQLQueryRepo
	logRepo *fakeChatQueryLogRepo
}

func newChatFixture(registry *fakeRegistry, model *fakeLLM, ragMode bool) *chatFixture {
	history := newFakeHistoryRepo()
	sqlRepo := &fakeSQLQueryRepo{}
	logRepo := &fakeChatQueryLogRepo{}
	factory := &fakeFactory{uow: &fakeUnitOfWork{sqlRepo: sqlRepo, logRepo: logRepo}}

	svc := NewChatService(factory, history, registry, model, sqlguard.New(0), ragMode, nopLogger{})

	return &chatFixture{service: svc, history: history, llm: model, sqlRepo: sqlRepo, logRepo: logRepo}
}

// ---- tests ----

func TestChatGreeting(t *testing.T) {
	fx := newChatFixture(&fakeRegistry{}, &fakeLLM{}, false)

	assert.Equal(t, constant.ChatGreetingMessage, fx.service.Greeting())
}

func TestAskNoSchemaMatches(t *testing.T) {
	fx := newChatFixture(&fakeRegistry{}, &fakeLLM{}, false)

	blocks, err := fx.service.Ask(context.Background(), "user-1", "what is our revenue")

	assert.NoError(t, err)
	assert.Len(t, blocks, 1)
	assert.Equal(t, constant.ChatNoSchemaMessage, blocks[0].Content)
	// The failed lookup is still part of the conversation
	assert.Len(t, fx.history.turns["user-1"], 2)
}

func TestAskSQLDirective(t *testing.T) {
	registry := &fakeRegistry{matches: []*contract.ScoredSchemaEmbedding{
		schemaMatch("employees", "Table: employees. Columns: id, name, email."),
	}}
	model := &fakeLLM{
		chatResponse: `{"type": "sql", "component": "table", "text": "Here are the employees.", "sql": "SELECT * FROM employees"}`,
	}
	fx := newChatFixture(registry, model, false)
	fx.sqlRepo.rows = []map[string]any{{"id": 1, "name": "Ana"}}

	blocks, err := fx.service.Ask(context.Background(), "user-1", "list employees")

	assert.NoError(t, err)
	assert.Len(t, blocks, 2)
	assert.Equal(t, "Here are the employees.", blocks[0].Content)
	assert.Equal(t, "table", blocks[1].Component)
	assert.Equal(t, "SELECT * FROM employees", fx.sqlRepo.lastSQL)

	// system instruction carries the retrieved schema
	assert.Equal(t, constant.ChatMessageRoleSystem, fx.llm.lastHistory[0].Role)
	assert.Contains(t, fx.llm.lastHistory[0].Content, "Table: employees")

	// turn is audited
	assert.Len(t, fx.logRepo.records, 1)
	assert.Equal(t, "list employees", fx.logRepo.records[0].Query)
}

func TestAskGenericDirective(t *testing.T) {
	registry := &fakeRegistry{matches: []*contract.ScoredSchemaEmbedding{
		schemaMatch("employees", "Table: employees."),
	}}
	model := &fakeLLM{
		chatResponse: `{"type": "generic", "text": "I track inventory, assets and staff."}`,
	}
	fx := newChatFixture(registry, model, false)

	blocks, err := fx.service.Ask(context.Background(), "user-1", "what can you do")

	assert.NoError(t, err)
	assert.Len(t, blocks, 1)
	assert.Equal(t, "I track inventory, assets and staff.", blocks[0].Content)
	assert.Empty(t, fx.sqlRepo.lastSQL)
}

func TestAskRejectsUnsafeSQL(t *testing.T) {
	registry := &fakeRegistry{matches: []*contract.ScoredSchemaEmbedding{
		schemaMatch("employees", "Table: employees."),
	}}
	model := &fakeLLM{
		chatResponse: `{"type": "sql", "component": "table", "text": "done", "sql": "DROP TABLE employees"}`,
	}
	fx := newChatFixture(registry, model, false)

	_, err := fx.service.Ask(context.Background(), "user-1", "drop everything")

	var appErr *serverutils.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Empty(t, fx.sqlRepo.lastSQL)
}

func TestAskUnparsableModelResponse(t *testing.T) {
	registry := &fakeRegistry{matches: []*contract.ScoredSchemaEmbedding{
		schemaMatch("employees", "Table: employees."),
	}}
	model := &fakeLLM{chatResponse: "I will not answer in JSON today."}
	fx := newChatFixture(registry, model, false)

	_, err := fx.service.Ask(context.Background(), "user-1", "list employees")

	var appErr *serverutils.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.Code)
	assert.Equal(t, "Model response could not be parsed as JSON", appErr.Message)
}

func TestAskModelUnavailable(t *testing.T) {
	registry := &fakeRegistry{matches: []*contract.ScoredSchemaEmbedding{
		schemaMatch("employees", "Table: employees."),
	}}
	model := &fakeLLM{chatErr: errors.New("connection refused")}
	fx := newChatFixture(registry, model, false)

	_, err := fx.service.Ask(context.Background(), "user-1", "list employees")

	var appErr *serverutils.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.Code)
}

func TestAskHistoryFailureIsNotFatal(t *testing.T) {
	registry := &fakeRegistry{matches: []*contract.ScoredSchemaEmbedding{
		schemaMatch("employees", "Table: employees."),
	}}
	model := &fakeLLM{
		chatResponse: `{"type": "generic", "text": "hi"}`,
	}
	fx := newChatFixture(registry, model, false)
	fx.history.getErr = errors.New("redis down")

	blocks, err := fx.service.Ask(context.Background(), "user-1", "hello")

	assert.NoError(t, err)
	assert.Len(t, blocks, 1)
}

func TestAskRagModeRefinesBlocks(t *testing.T) {
	registry := &fakeRegistry{matches: []*contract.ScoredSchemaEmbedding{
		schemaMatch("assets", "Table: assets."),
	}}
	model := &fakeLLM{
		chatResponse:     `{"type": "sql", "component": "table", "text": "found", "sql": "SELECT * FROM assets"}`,
		generateResponse: `[{"component": "text", "content": "You have one asset."}]`,
	}
	fx := newChatFixture(registry, model, true)
	fx.sqlRepo.rows = []map[string]any{{"name": "Printer"}}

	blocks, err := fx.service.Ask(context.Background(), "user-1", "how many assets")

	assert.NoError(t, err)
	assert.Len(t, blocks, 1)
	assert.Equal(t, "You have one asset.", blocks[0].Content)

	// the second pass is prompted with the first-pass blocks
	assert.Contains(t, fx.llm.lastPrompt, "how many assets")
	assert.Contains(t, fx.llm.lastPrompt, "found")
	assert.Contains(t, fx.llm.lastPrompt, "Printer")
	assert.Contains(t, fx.llm.lastPrompt, `"component"`)
}

func TestAskRagModeFallsBackOnBadRefinement(t *testing.T) {
	registry := &fakeRegistry{matches: []*contract.ScoredSchemaEmbedding{
		schemaMatch("assets", "Table: assets."),
	}}
	model := &fakeLLM{
		chatResponse:     `{"type": "sql", "component": "table", "text": "found", "sql": "SELECT * FROM assets"}`,
		generateResponse: "not an array",
	}
	fx := newChatFixture(registry, model, true)
	fx.sqlRepo.rows = []map[string]any{{"name": "Printer"}}

	blocks, err := fx.service.Ask(context.Background(), "user-1", "how many assets")

	assert.NoError(t, err)
	assert.Len(t, blocks, 2)
}

func TestClear(t *testing.T) {
	fx := newChatFixture(&fakeRegistry{}, &fakeLLM{}, false)
	fx.history.turns["user-1"] = []contract.ChatTurn{{Role: "user", Content: "hi"}}

	err := fx.service.Clear(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Empty(t, fx.history.turns["user-1"])
}
