package config

import (
	"testing"

	"lark-inventory-be/internal/constant"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, constant.EmbedSchemaTopicName, cfg.Chat.EmbedTopicName)
	assert.Equal(t, 30, cfg.Chat.HistoryTTLMinutes)
	assert.Equal(t, 500, cfg.Chat.MaxResultRows)
	assert.False(t, cfg.Chat.RAGMode)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("EMBED_SCHEMA_TOPIC_NAME", "EMBED_SCHEMA_TEST")
	t.Setenv("CHAT_MAX_RESULT_ROWS", "25")
	t.Setenv("CHAT_RAG_MODE", "true")

	cfg := Load()

	assert.Equal(t, "EMBED_SCHEMA_TEST", cfg.Chat.EmbedTopicName)
	assert.Equal(t, 25, cfg.Chat.MaxResultRows)
	assert.True(t, cfg.Chat.RAGMode)
}
