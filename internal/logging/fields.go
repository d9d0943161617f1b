package logging

// Field name constants for structured logging.
// Using constants prevents typos across commands.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldConfig = "config"

	// Document fields.
	FieldLabel       = "label"
	FieldBufferLine  = "buffer_line"
	FieldProgramLine = "program_line"
	FieldLines       = "lines"
	FieldBytes       = "bytes"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
