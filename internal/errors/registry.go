package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
	DocURL     string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Builder Errors (E001-E009)
	// ============================================

	"E001": {
		Category:   CategoryValidation,
		Message:    "Invalid argument",
		Suggestion: "Check the type of the value passed for the named argument",
		DocURL:     "https://hyperflex.dev/docs/errors/E001",
	},
	"E002": {
		Category:   CategoryValidation,
		Message:    "Invalid selector",
		Suggestion: "A selector must start with a tag name, e.g. div#id.class",
		DocURL:     "https://hyperflex.dev/docs/errors/E002",
	},
	"E003": {
		Category:   CategoryRuntime,
		Message:    "Builder already used",
		Suggestion: "Create a new builder, or use builder.HTML for one-shot builds",
		DocURL:     "https://hyperflex.dev/docs/errors/E003",
	},

	// ============================================
	// Document Errors (E010-E019)
	// ============================================

	"E010": {
		Category:   CategoryValidation,
		Message:    "Document parse failed",
		Suggestion: "Check that the document is valid YAML or JSON",
		DocURL:     "https://hyperflex.dev/docs/errors/E010",
	},

	// ============================================
	// Config Errors (E020-E029)
	// ============================================

	"E020": {
		Category:   CategoryConfig,
		Message:    "Config load failed",
		Suggestion: "Check that hyperflex.json is valid JSON",
		DocURL:     "https://hyperflex.dev/docs/errors/E020",
	},
	"E021": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		DocURL:   "https://hyperflex.dev/docs/errors/E021",
	},

	// ============================================
	// Publish Errors (E030-E039)
	// ============================================

	"E030": {
		Category:   CategoryRuntime,
		Message:    "Publish failed",
		Suggestion: "Check the bucket name, region and AWS credentials",
		DocURL:     "https://hyperflex.dev/docs/errors/E030",
	},

	// ============================================
	// CLI Errors (E040-E049)
	// ============================================

	"E040": {
		Category: CategoryCLI,
		Message:  "Input file not found",
		DocURL:   "https://hyperflex.dev/docs/errors/E040",
	},
	"E041": {
		Category:   CategoryCLI,
		Message:    "Template not found",
		Suggestion: "Run 'hyperflex init --list' to see the available templates",
		DocURL:     "https://hyperflex.dev/docs/errors/E041",
	},
	"E042": {
		Category:   CategoryCLI,
		Message:    "File already exists",
		Suggestion: "Use --force to overwrite it",
		DocURL:     "https://hyperflex.dev/docs/errors/E042",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
