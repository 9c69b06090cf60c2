package dto

import "lark-inventory-be/pkg/rag/composer"

type ChatQueryRequest struct {
	Query string `json:"query" validate:"required"`
}

type ChatResponse struct {
	Response []composer.UIBlock `json:"response"`
}

type ChatGreetingResponse struct {
	Message string `json:"message"`
}

type ClearChatResponse struct {
	Message string `json:"message"`
}

type SchemaDescriptorResponse struct {
	Id          string         `json:"id"`
	TableName   string         `json:"table_name"`
	Document    string         `json:"document"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
}
