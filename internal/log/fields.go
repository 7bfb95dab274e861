package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldFile      = "file"
	FieldCheck     = "check"
	FieldEntity    = "entity"
	FieldID        = "id"
	FieldCPF       = "cpf"
	FieldCNPJ      = "cnpj"
	FieldCouple    = "couple"
	FieldMonths    = "months"
	FieldExpenses  = "expenses"
	FieldDirectory = "directory"
	FieldReport    = "report"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentStorage   = "storage"
	ComponentValidator = "validator"
	ComponentPlanner   = "planner"
	ComponentReport    = "report"
)
