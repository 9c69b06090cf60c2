package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// Greeting returned by GET /chat.
	ChatGreetingMessage = "Hello, How can I help you today?"

	// Canned reply when retrieval finds no matching schema descriptor.
	ChatNoSchemaMessage = "Sorry, I couldn't find any relevant schema information."

	// Watermill topic carrying schema-descriptor embedding jobs.
	EmbedSchemaTopicName = "EMBED_SCHEMA"

	// Number of schema descriptors retrieved per chat turn.
	SchemaSearchTopK = 3
)

const (
	BatchStatusManufactured = "Manufactured"
	BatchStatusInTransit    = "In Transit"
	BatchStatusDelivered    = "Delivered"

	AssetStatusInUse            = "In Use"
	AssetStatusUnderMaintenance = "Under Maintenance"
	AssetStatusRetired          = "Retired"

	MaintenanceStatusReported   = "Reported"
	MaintenanceStatusInProgress = "In Progress"
	MaintenanceStatusResolved   = "Resolved"
)
