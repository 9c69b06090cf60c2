package service

// SchemaDescriptorSeed is one entry of the built-in schema catalogue.
type SchemaDescriptorSeed struct {
	TableName   string
	Document    string
	Description string
}

// SchemaCatalog returns the descriptor for every business table. The chat
// pipeline retrieves from these, so the documents spell out columns, types
// and enum values the way the generation model expects to read them.
func SchemaCatalog() []SchemaDescriptorSeed {
	return []SchemaDescriptorSeed{
		{
			TableName:   "employees",
			Document:    "Table: employees, Columns: id(int), name(string), email(string), department_id(FK), designation(string), date_joined(date)",
			Description: "Main table storing employee information with department relationships",
		},
		{
			TableName:   "departments",
			Document:    "Table: departments, Columns: id(int), name(string), head_id(FK)",
			Description: "Department master table with department head relationships",
		},
		{
			TableName:   "batches",
			Document:    "Table: batches, Columns: id(int), product_id(FK), batch_code(string), quantity(int), manufactured_date(date), expiry_date(date), created_by(FK)",
			Description: "Manufacturing batch tracking with product and employee relationships",
		},
		{
			TableName:   "batch_tracking",
			Document:    "Table: batch_tracking, Columns: id(int), batch_id(FK), location(string), status(enum: Manufactured/In Transit/Delivered), timestamp(datetime), handled_by(FK)",
			Description: "Real-time batch location and status tracking with employee handling info",
		},
		{
			TableName:   "products",
			Document:    "Table: products, Columns: id(int), name(string), category(string), unit_price(float)",
			Description: "Product master data with pricing information",
		},
		{
			TableName:   "assets",
			Document:    "Table: assets, Columns: id(int), asset_tag(string), name(string), category(string), location(string), purchase_date(date), warranty_until(date), assigned_to(FK), department_id(FK), status(enum: In Use/Under Maintenance/Retired)",
			Description: "Organizational asset inventory with assignment, warranty and lifecycle status",
		},
		{
			TableName:   "maintenance_logs",
			Document:    "Table: maintenance_logs, Columns: id(int), asset_id(FK), reported_by(FK), description(string), status(enum: Reported/In Progress/Resolved), assigned_employee_id(FK), assigned_vendor_id(FK), created_at(datetime), resolved_date(date)",
			Description: "Maintenance issue reports per asset with assignment and resolution tracking",
		},
		{
			TableName:   "vendors",
			Document:    "Table: vendors, Columns: id(int), name(string), contact_person(string), email(string), phone(string), address(string)",
			Description: "External vendor master data for asset servicing",
		},
		{
			TableName:   "asset_vendor_link",
			Document:    "Table: asset_vendor_link, Columns: id(int), asset_id(FK), vendor_id(FK), service_type(string), last_service_date(date)",
			Description: "Link table connecting assets to the vendors that service them",
		},
	}
}
