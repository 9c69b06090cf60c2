package composer

import (
	"errors"
	"testing"

	"lark-inventory-be/pkg/rag/directive"
)

func TestComposeNonSQL(t *testing.T) {
	d := &directive.ModelDirective{
		Type: directive.TypeGeneric,
		Text: "Hello there.",
	}

	blocks := Compose(d, nil)

	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d, want 1", len(blocks))
	}
	if blocks[0].Component != directive.ComponentText {
		t.Errorf("Component = %q, want text", blocks[0].Component)
	}
	if blocks[0].Content != "Hello there." {
		t.Errorf("Content = %v, want directive text", blocks[0].Content)
	}
}

func TestComposeSQLWithRows(t *testing.T) {
	d := &directive.ModelDirective{
		Type:      directive.TypeSQL,
		Component: directive.ComponentTable,
		Text:      "Here are your batches.",
	}
	rows := []map[string]any{
		{"batch_code": "B-001", "quantity": 10},
	}

	blocks := Compose(d, rows)

	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}
	if blocks[0].Content != "Here are your batches." {
		t.Errorf("text block Content = %v, want directive text", blocks[0].Content)
	}
	if blocks[1].Component != directive.ComponentTable {
		t.Errorf("data block Component = %q, want table", blocks[1].Component)
	}
}

func TestComposeSQLEmptyRows(t *testing.T) {
	d := &directive.ModelDirective{
		Type:      directive.TypeSQL,
		Component: directive.ComponentTable,
		Text:      "Here are your batches.",
	}

	blocks := Compose(d, nil)

	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}
	if blocks[0].Content != NoResultsMessage {
		t.Errorf("text block Content = %v, want no-results message", blocks[0].Content)
	}
}

func TestComposeSQLDefaultsComponent(t *testing.T) {
	d := &directive.ModelDirective{
		Type: directive.TypeSQL,
		Text: "ok",
	}

	blocks := Compose(d, []map[string]any{{"n": 1}})

	if blocks[1].Component != FallbackComponent {
		t.Errorf("data block Component = %q, want fallback", blocks[1].Component)
	}
}

func TestParseBlocks(t *testing.T) {
	response := "Here is the refined answer:\n" +
		`[{"component": "text", "content": "You have 3 assets."}, {"component": "table", "content": [{"name": "Printer"}]}]`

	blocks, err := ParseBlocks(response)
	if err != nil {
		t.Fatalf("ParseBlocks error = %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}
	if blocks[0].Component != "text" {
		t.Errorf("Component = %q, want text", blocks[0].Component)
	}
}

func TestParseBlocksErrors(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"no array", "just prose"},
		{"empty array", "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBlocks(tt.response)
			if !errors.Is(err, ErrNoBlockArray) {
				t.Errorf("ParseBlocks(%q) error = %v, want ErrNoBlockArray", tt.response, err)
			}
		})
	}
}
