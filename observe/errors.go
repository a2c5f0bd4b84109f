package observe

// Error codes carried as panic payloads for misuse of the property engine.
// All of these signal programming errors, not runtime conditions.
const (
	ErrCodeNilListener   = "FLUENTKIT_NIL_LISTENER"
	ErrCodeNilObservable = "FLUENTKIT_NIL_OBSERVABLE"
	ErrCodeSelfBinding   = "FLUENTKIT_SELF_BINDING"
	ErrCodeBoundValue    = "FLUENTKIT_BOUND_VALUE"
)
