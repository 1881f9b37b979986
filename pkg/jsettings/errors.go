package jsettings

import "errors"

// Kind classifies a loader failure.
type Kind int

const (
	// KindReported is an error raised by a caller through Report.
	KindReported Kind = iota
	// KindUnsupportedLevel is a level outside info, warning, error.
	KindUnsupportedLevel
	// KindFileAccess is a missing or unreadable file.
	KindFileAccess
	// KindMalformedJSON is a file whose content does not decode.
	KindMalformedJSON
	// KindSchemaValidation is a settings document that does not conform to the schema.
	KindSchemaValidation
	// KindInvalidSchema is a schema document that is not itself a valid schema.
	KindInvalidSchema
	// KindAttributeCollision is a settings key that collides with a reserved name.
	KindAttributeCollision
)

var kindNames = map[Kind]string{
	KindReported:           "Reported",
	KindUnsupportedLevel:   "UnsupportedLogLevel",
	KindFileAccess:         "FileAccessError",
	KindMalformedJSON:      "MalformedJson",
	KindSchemaValidation:   "SchemaValidationError",
	KindInvalidSchema:      "InvalidSchema",
	KindAttributeCollision: "AttributeCollision",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Error is the single error type returned by the loader.
//
// Error() yields exactly the message that was emitted through the sink.
type Error struct {
	Kind    Kind   // Failure class
	Message string // Message emitted through the sink
	Path    string // File involved, if any
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is comparisons.
var (
	ErrReported           = &Error{Kind: KindReported, Message: "reported error"}
	ErrUnsupportedLevel   = &Error{Kind: KindUnsupportedLevel, Message: "unsupported log level"}
	ErrFileAccess         = &Error{Kind: KindFileAccess, Message: "file access error"}
	ErrMalformedJSON      = &Error{Kind: KindMalformedJSON, Message: "malformed json"}
	ErrSchemaValidation   = &Error{Kind: KindSchemaValidation, Message: "schema validation error"}
	ErrInvalidSchema      = &Error{Kind: KindInvalidSchema, Message: "invalid schema"}
	ErrAttributeCollision = &Error{Kind: KindAttributeCollision, Message: "attribute collision"}
)

// KindOf extracts the kind from err. The second result is false when err is
// not a loader error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
