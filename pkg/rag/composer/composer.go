package composer

import (
	"encoding/json"
	"errors"
	"strings"

	"lark-inventory-be/pkg/rag/directive"
)

// Messages shown to the user when there is nothing better to say.
const (
	NoResultsMessage  = "The query ran successfully but returned no results."
	NoSchemaMessage   = "Sorry, I couldn't find any relevant schema information."
	FallbackComponent = directive.ComponentText
)

var ErrNoBlockArray = errors.New("no JSON array found in model response")

// UIBlock is one renderable unit of a chat reply. Content is either a plain
// string or structured data the named component knows how to render.
type UIBlock struct {
	Component string `json:"component"`
	Content   any    `json:"content"`
}

// Compose shapes a parsed directive plus executed rows into UI blocks.
// SQL answers always render as a text block followed by a data block so the
// UI can show the explanation above the widget.
func Compose(d *directive.ModelDirective, rows []map[string]any) []UIBlock {
	if d.Type != directive.TypeSQL {
		return []UIBlock{TextBlock(d.Text)}
	}

	text := d.Text
	if len(rows) == 0 {
		text = NoResultsMessage
	}

	component := d.Component
	if component == "" {
		component = FallbackComponent
	}

	return []UIBlock{
		TextBlock(text),
		{Component: component, Content: rows},
	}
}

// TextBlock wraps a plain message as a single text block.
func TextBlock(message string) UIBlock {
	return UIBlock{Component: directive.ComponentText, Content: message}
}

// ParseBlocks extracts a block array from the final-answer completion.
// Same tolerance as directive parsing: cut from the first '[' to the last ']'
// and unmarshal what is left.
func ParseBlocks(response string) ([]UIBlock, error) {
	startIdx := strings.Index(response, "[")
	endIdx := strings.LastIndex(response, "]")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return nil, ErrNoBlockArray
	}

	var blocks []UIBlock
	if err := json.Unmarshal([]byte(response[startIdx:endIdx+1]), &blocks); err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, ErrNoBlockArray
	}

	return blocks, nil
}
