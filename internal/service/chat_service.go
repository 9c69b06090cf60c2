package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"lark-inventory-be/internal/constant"
	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/pkg/logger"
	"lark-inventory-be/internal/pkg/serverutils"
	"lark-inventory-be/internal/repository/contract"
	"lark-inventory-be/internal/repository/unitofwork"
	"lark-inventory-be/pkg/llm"
	"lark-inventory-be/pkg/rag/composer"
	"lark-inventory-be/pkg/rag/directive"
	"lark-inventory-be/pkg/rag/prompt"
	"lark-inventory-be/pkg/sqlguard"

	"gorm.io/datatypes"
)

type IChatService interface {
	Greeting() string
	Ask(ctx context.Context, userId, query string) ([]composer.UIBlock, error)
	Clear(ctx context.Context, userId string) error
}

type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	historyRepo contract.ChatHistoryRepository
	registry    ISchemaRegistryService
	llmProvider llm.LLMProvider
	guard       *sqlguard.Guard
	ragMode     bool
	log         logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	historyRepo contract.ChatHistoryRepository,
	registry ISchemaRegistryService,
	llmProvider llm.LLMProvider,
	guard *sqlguard.Guard,
	ragMode bool,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:  uowFactory,
		historyRepo: historyRepo,
		registry:    registry,
		llmProvider: llmProvider,
		guard:       guard,
		ragMode:     ragMode,
		log:         log,
	}
}

func (s *chatService) Greeting() string {
	return constant.ChatGreetingMessage
}

func (s *chatService) Ask(ctx context.Context, userId, query string) ([]composer.UIBlock, error) {
	history := s.loadHistory(ctx, userId)

	matches := s.registry.Search(ctx, query, constant.SchemaSearchTopK)
	if len(matches) == 0 {
		blocks := []composer.UIBlock{composer.TextBlock(constant.ChatNoSchemaMessage)}
		s.saveTurn(ctx, userId, query, blocks)
		return blocks, nil
	}

	documents := make([]string, 0, len(matches))
	for _, match := range matches {
		documents = append(documents, match.Embedding.Document)
	}
	instruction := prompt.NewDirectiveBuilder(strings.Join(documents, "\n")).Build()

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: constant.ChatMessageRoleSystem, Content: instruction})
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: constant.ChatMessageRoleUser, Content: query})

	completion, err := s.llmProvider.Chat(ctx, messages)
	if err != nil {
		return nil, serverutils.NewBadGatewayError(fmt.Sprintf("model request failed: %v", err))
	}

	d, err := directive.Parse(completion)
	if err != nil {
		return nil, serverutils.NewBadGatewayError("Model response could not be parsed as JSON")
	}

	var blocks []composer.UIBlock
	if d.Type == directive.TypeSQL {
		blocks, err = s.runQuery(ctx, query, d)
		if err != nil {
			return nil, err
		}
	} else {
		blocks = composer.Compose(d, nil)
	}

	s.saveTurn(ctx, userId, query, blocks)
	s.audit(ctx, userId, query, d, blocks)

	return blocks, nil
}

func (s *chatService) Clear(ctx context.Context, userId string) error {
	return s.historyRepo.Clear(ctx, userId)
}

func (s *chatService) runQuery(ctx context.Context, query string, d *directive.ModelDirective) ([]composer.UIBlock, error) {
	safeSQL, err := s.guard.Validate(d.SQL)
	if err != nil {
		return nil, serverutils.NewBadRequestError(fmt.Sprintf("generated SQL rejected: %v", err))
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.SQLQueryRepository().Execute(ctx, safeSQL)
	if err != nil {
		return nil, serverutils.NewInternalError(fmt.Sprintf("query execution failed: %v", err))
	}

	blocks := composer.Compose(d, rows)

	if s.ragMode && len(rows) > 0 {
		blocks = s.refineBlocks(ctx, query, blocks)
	}

	return blocks, nil
}

// refineBlocks runs the optional second pass that re-renders the first-pass
// blocks into model-chosen ones. Any failure falls back to the input blocks.
func (s *chatService) refineBlocks(ctx context.Context, query string, fallback []composer.UIBlock) []composer.UIBlock {
	finalPrompt := prompt.NewFinalAnswerBuilder(query, fallback).Build()

	completion, err := s.llmProvider.Generate(ctx, finalPrompt)
	if err != nil {
		s.log.Warn("chat", "final answer pass failed", map[string]interface{}{
			"error": err.Error(),
		})
		return fallback
	}

	refined, err := composer.ParseBlocks(completion)
	if err != nil {
		s.log.Warn("chat", "final answer parse failed", map[string]interface{}{
			"error": err.Error(),
		})
		return fallback
	}
	return refined
}

func (s *chatService) loadHistory(ctx context.Context, userId string) []contract.ChatTurn {
	history, err := s.historyRepo.Get(ctx, userId)
	if err != nil {
		s.log.Warn("chat", "history read failed, continuing without context", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return history
}

func (s *chatService) saveTurn(ctx context.Context, userId, query string, blocks []composer.UIBlock) {
	encoded, err := json.Marshal(blocks)
	if err != nil {
		s.log.Warn("chat", "failed to serialize reply for history", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	err = s.historyRepo.Append(ctx, userId,
		contract.ChatTurn{Role: constant.ChatMessageRoleUser, Content: query},
		contract.ChatTurn{Role: constant.ChatMessageRoleAssistant, Content: string(encoded)},
	)
	if err != nil {
		s.log.Warn("chat", "history append failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// audit persists the turn for the admin dashboard. Best effort only.
func (s *chatService) audit(ctx context.Context, userId, query string, d *directive.ModelDirective, blocks []composer.UIBlock) {
	directiveJson, err := json.Marshal(d)
	if err != nil {
		return
	}
	blocksJson, err := json.Marshal(blocks)
	if err != nil {
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	record := &entity.ChatQueryLog{
		UserId:    userId,
		Query:     query,
		Directive: datatypes.JSON(directiveJson),
		Blocks:    datatypes.JSON(blocksJson),
	}
	if err := uow.ChatQueryLogRepository().Create(ctx, record); err != nil {
		s.log.Warn("chat", "audit log write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
