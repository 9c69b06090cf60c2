package directive

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		response      string
		wantType      string
		wantComponent string
		wantSQL       string
		wantErr       error
	}{
		{
			name:          "sql directive",
			response:      `{"type": "sql", "component": "table", "text": "Here are the employees.", "sql": "SELECT * FROM employees"}`,
			wantType:      TypeSQL,
			wantComponent: ComponentTable,
			wantSQL:       "SELECT * FROM employees",
		},
		{
			name:          "json wrapped in code fence",
			response:      "Sure, here you go:\n```json\n{\"type\": \"sql\", \"component\": \"number\", \"text\": \"Count\", \"sql\": \"SELECT count(*) FROM assets\"}\n```",
			wantType:      TypeSQL,
			wantComponent: ComponentNumber,
			wantSQL:       "SELECT count(*) FROM assets",
		},
		{
			name:          "generic directive",
			response:      `{"type": "generic", "text": "Hello!"}`,
			wantType:      TypeGeneric,
			wantComponent: ComponentText,
		},
		{
			name:          "out of scope",
			response:      `{"type": "out_of_scope", "component": "text", "text": "I can only answer inventory questions."}`,
			wantType:      TypeOutOfScope,
			wantComponent: ComponentText,
		},
		{
			name:          "uppercase type is normalized",
			response:      `{"type": "SQL", "component": "table", "text": "ok", "sql": "SELECT 1"}`,
			wantType:      TypeSQL,
			wantComponent: ComponentTable,
			wantSQL:       "SELECT 1",
		},
		{
			name:     "no json at all",
			response: "I cannot answer that.",
			wantErr:  ErrNoJSON,
		},
		{
			name:     "unknown type",
			response: `{"type": "mystery", "text": "??"}`,
			wantErr:  ErrUnknownType,
		},
		{
			name:     "sql type without statement",
			response: `{"type": "sql", "component": "table", "text": "ok"}`,
			wantErr:  ErrMissingSQL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.response)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse error = %v, want nil", err)
			}

			if d.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", d.Type, tt.wantType)
			}
			if d.Component != tt.wantComponent {
				t.Errorf("Component = %q, want %q", d.Component, tt.wantComponent)
			}
			if d.SQL != tt.wantSQL {
				t.Errorf("SQL = %q, want %q", d.SQL, tt.wantSQL)
			}
		})
	}
}

func TestParseMalformedJSON(t *testing.T) {
	_, err := Parse(`{"type": "sql", "sql": }`)
	if err == nil {
		t.Fatal("Parse error = nil, want unmarshal failure")
	}
}
