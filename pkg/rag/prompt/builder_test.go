package prompt

import (
	"strings"
	"testing"
)

func TestDirectiveBuilderIncludesSchemas(t *testing.T) {
	schemaContext := "Table: employees. Columns: id, name, email."

	result := NewDirectiveBuilder(schemaContext).Build()

	if !strings.Contains(result, schemaContext) {
		t.Error("prompt missing schema context")
	}
	if !strings.Contains(result, "Lark AI") {
		t.Error("prompt missing persona")
	}
	if !strings.Contains(result, "SELECT") {
		t.Error("prompt missing read-only SQL guideline")
	}
	for _, intentType := range []string{"sql", "generic", "out_of_scope", "need_more_info"} {
		if !strings.Contains(result, intentType) {
			t.Errorf("prompt missing intent type %q", intentType)
		}
	}
}

func TestDirectiveBuilderResponseFormat(t *testing.T) {
	result := NewDirectiveBuilder("schema").Build()

	for _, field := range []string{`"type"`, `"component"`, `"text"`, `"sql"`} {
		if !strings.Contains(result, field) {
			t.Errorf("prompt missing response field %s", field)
		}
	}
}

func TestFinalAnswerBuilderRendersData(t *testing.T) {
	data := []map[string]any{{"name": "Laptop", "quantity": 4}}

	result := NewFinalAnswerBuilder("how many laptops do we have", data).Build()

	if !strings.Contains(result, "how many laptops do we have") {
		t.Error("prompt missing user query")
	}
	if !strings.Contains(result, "Laptop") {
		t.Error("prompt missing serialized data")
	}
}
