package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DirectiveBuilder builds the system prompt that asks the model to classify
// the user's question and, for data questions, produce a SQL statement.
type DirectiveBuilder struct {
	schemaContext string
}

// NewDirectiveBuilder creates a builder over the retrieved schema context.
func NewDirectiveBuilder(schemaContext string) *DirectiveBuilder {
	return &DirectiveBuilder{schemaContext: schemaContext}
}

// Build creates the full instruction prompt.
func (b *DirectiveBuilder) Build() string {
	var prompt strings.Builder

	b.writePersona(&prompt)
	b.writeTask(&prompt)
	b.writeSQLGuidelines(&prompt)
	b.writeAccuracyRules(&prompt)
	b.writeScopeConstraints(&prompt)
	b.writeSchemas(&prompt)
	b.writeResponseFormat(&prompt)

	return prompt.String()
}

func (b *DirectiveBuilder) writePersona(prompt *strings.Builder) {
	prompt.WriteString("You are 'Lark AI', an intelligent chatbot assistant integrated into an organization's dashboard.\n")
	prompt.WriteString("Users will ask questions in natural language, and possibly ask follow-up questions based on earlier parts of the conversation.\n\n")
}

func (b *DirectiveBuilder) writeTask(prompt *strings.Builder) {
	prompt.WriteString("Task:\n")
	prompt.WriteString("- If it is a generic question, reply with a helpful message and set \"type\" as \"generic\".\n")
	prompt.WriteString("- If it is a question about organizational data, analyze it and generate a valid SQL query and respond with \"type\" as \"sql\".\n")
	prompt.WriteString("- If the query is out of scope, set \"type\": \"out_of_scope\" and reply appropriately.\n")
	prompt.WriteString("- If you need more information to proceed, respond with \"type\": \"need_more_info\" and ask the user what you need.\n")
	prompt.WriteString("- If you can fully answer the question based on the context, respond with \"type\": \"generic\" and provide a natural language response.\n\n")
}

func (b *DirectiveBuilder) writeSQLGuidelines(prompt *strings.Builder) {
	prompt.WriteString("SQL Guidelines:\n")
	prompt.WriteString("- Only generate valid SELECT SQL queries.\n")
	prompt.WriteString("- Format dates in \"DD-MM-YYYY\" format.\n")
	prompt.WriteString("- Select only relevant columns.\n")
	prompt.WriteString("- Translate vague time expressions (e.g., \"this quarter\") into actual dates.\n")
	prompt.WriteString("- Join tables when necessary.\n")
	prompt.WriteString("- SQL must be valid PostgreSQL and ready to run as a single statement.\n\n")
}

func (b *DirectiveBuilder) writeAccuracyRules(prompt *strings.Builder) {
	prompt.WriteString("Error Handling & Accuracy Requirements:\n")
	prompt.WriteString("1. Spelling Flexibility:\n")
	prompt.WriteString("- Tolerate minor spelling mistakes (e.g., \"Softwear Engineer\" means \"Software Engineer\").\n")
	prompt.WriteString("- Correct common abbreviations (e.g., \"PM\" means \"Product Manager\", \"SE\" means \"Software Engineer\").\n")
	prompt.WriteString("- For ambiguous terms, ask the user for clarification.\n")
	prompt.WriteString("2. Data Validation:\n")
	prompt.WriteString("- Validate values such as known roles, departments, companies, or regions.\n")
	prompt.WriteString("- Reject impossible queries (e.g., \"users from Mars\").\n")
	prompt.WriteString("- Translate vague time expressions accurately (e.g., \"this quarter\", \"last month\").\n")
	prompt.WriteString("3. Edge Case Handling:\n")
	prompt.WriteString("- Empty results are valid as long as the SQL is correct.\n")
	prompt.WriteString("- Warn the user if a query could return a very large result set.\n")
	prompt.WriteString("- Handle special characters in names and emails correctly.\n\n")
}

func (b *DirectiveBuilder) writeScopeConstraints(prompt *strings.Builder) {
	prompt.WriteString("Scope Constraints:\n")
	prompt.WriteString("You must not respond to vague or out-of-scope queries like:\n")
	prompt.WriteString("- \"Show me *\"\n")
	prompt.WriteString("- \"Find all things related to *\"\n")
	prompt.WriteString("- \"What's trending now?\"\n")
	prompt.WriteString("Instead, respond with:\n")
	prompt.WriteString("- \"I'm sorry, I need more specific information to assist you.\"\n")
	prompt.WriteString("- \"This query appears to be outside the current scope of supported questions.\"\n\n")
}

func (b *DirectiveBuilder) writeSchemas(prompt *strings.Builder) {
	prompt.WriteString("Schemas:\n")
	prompt.WriteString(b.schemaContext)
	prompt.WriteString("\n\n")
}

func (b *DirectiveBuilder) writeResponseFormat(prompt *strings.Builder) {
	prompt.WriteString("Respond in JSON:\n")
	prompt.WriteString("{\n")
	prompt.WriteString("    \"type\": \"sql\" | \"generic\" | \"out_of_scope\" | \"need_more_info\",\n")
	prompt.WriteString("    \"component\": \"table\" | \"text\" | \"number\" | \"pie_chart\" | \"bar_chart\",\n")
	prompt.WriteString("    \"text\": \"Natural language explanation or response for UI display\",\n")
	prompt.WriteString("    \"sql\": \"SELECT ...\"\n")
	prompt.WriteString("}\n")
}

// FinalAnswerBuilder builds the second-pass prompt that asks the model to
// turn executed query results into renderable UI blocks.
type FinalAnswerBuilder struct {
	query string
	data  any
}

// NewFinalAnswerBuilder creates a builder over the user query and its results.
func NewFinalAnswerBuilder(query string, data any) *FinalAnswerBuilder {
	return &FinalAnswerBuilder{query: query, data: data}
}

// Build creates the full answer-composition prompt.
func (b *FinalAnswerBuilder) Build() string {
	var prompt strings.Builder

	prompt.WriteString("You are 'Lark AI', an intelligent chatbot assistant integrated into an organization's dashboard.\n\n")
	prompt.WriteString("Here is the data to answer the user's query:\n")
	prompt.WriteString("query: ")
	prompt.WriteString(b.query)
	prompt.WriteString("\ndata: ")
	prompt.WriteString(b.renderData())
	prompt.WriteString("\n\n")
	prompt.WriteString("Answer the user's query as best as possible using the data provided.\n")
	prompt.WriteString("In the UI, we can display the results as text, lists, tables, charts or a combination of these components based on relevance.\n\n")
	prompt.WriteString("Respond in JSON:\n")
	prompt.WriteString("[\n")
	prompt.WriteString("    {\n")
	prompt.WriteString("        \"component\": \"text\" | \"list\" | \"table\" | \"pie_chart\" | \"bar_chart\",\n")
	prompt.WriteString("        \"content\": string | object\n")
	prompt.WriteString("    }\n")
	prompt.WriteString("]\n")

	return prompt.String()
}

func (b *FinalAnswerBuilder) renderData() string {
	encoded, err := json.Marshal(b.data)
	if err != nil {
		return fmt.Sprintf("%v", b.data)
	}
	return string(encoded)
}
