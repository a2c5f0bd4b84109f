package fluentkit

// Error codes for toolkit misuse. All but ErrCodeInvalidTheme and
// ErrCodeInvalidField are carried as panic payloads: they signal
// programming errors at the call site.
const (
	ErrCodeNilArgument       = "FLUENTKIT_NIL_ARGUMENT"
	ErrCodeWrongNodeType     = "FLUENTKIT_WRONG_NODE_TYPE"
	ErrCodeOwnershipMismatch = "FLUENTKIT_OWNERSHIP_MISMATCH"
	ErrCodeInvalidTheme      = "FLUENTKIT_INVALID_THEME"
	ErrCodeInvalidField      = "FLUENTKIT_INVALID_FIELD"
)
