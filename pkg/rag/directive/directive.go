package directive

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Intent types the model may answer with.
const (
	TypeSQL          = "sql"
	TypeGeneric      = "generic"
	TypeOutOfScope   = "out_of_scope"
	TypeNeedMoreInfo = "need_more_info"
)

// UI components the model may suggest for rendering.
const (
	ComponentTable    = "table"
	ComponentText     = "text"
	ComponentNumber   = "number"
	ComponentList     = "list"
	ComponentPieChart = "pie_chart"
	ComponentBarChart = "bar_chart"
)

var (
	ErrNoJSON      = errors.New("no JSON object found in model response")
	ErrUnknownType = errors.New("unknown directive type")
	ErrMissingSQL  = errors.New("directive type is sql but no statement was provided")
)

// ModelDirective is the structured reply the generation model must produce:
// an intent classification, a suggested UI widget, display text, and the SQL
// statement when the intent is "sql".
type ModelDirective struct {
	Type      string `json:"type"`
	Component string `json:"component"`
	Text      string `json:"text"`
	SQL       string `json:"sql,omitempty"`
}

// Parse extracts and validates a ModelDirective from a raw model completion.
// Models wrap JSON in prose or code fences often enough that we cut from the
// first '{' to the last '}' before unmarshalling.
func Parse(response string) (*ModelDirective, error) {
	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, ErrNoJSON
	}

	var d ModelDirective
	if err := json.Unmarshal([]byte(jsonContent), &d); err != nil {
		return nil, fmt.Errorf("directive unmarshal failed: %w", err)
	}

	d.Type = strings.ToLower(strings.TrimSpace(d.Type))
	switch d.Type {
	case TypeSQL, TypeGeneric, TypeOutOfScope, TypeNeedMoreInfo:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, d.Type)
	}

	if d.Component == "" {
		d.Component = ComponentText
	}

	if d.Type == TypeSQL && strings.TrimSpace(d.SQL) == "" {
		return nil, ErrMissingSQL
	}

	return &d, nil
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
