package dto

// PublishEmbedSchemaMessage is the payload carried on the schema embedding topic.
type PublishEmbedSchemaMessage struct {
	TableName string `json:"table_name"`
}
