package apperror

type Kind string

var (
	// --- Authentication ---
	Unauthenticated Kind = "unauthenticated"
	Forbidden       Kind = "forbidden"

	// --- Request / upstream ---
	InvalidInput   Kind = "invalid_input"
	NotFound       Kind = "not_found"
	Conflict       Kind = "conflict"
	RequestTimeout Kind = "request_timeout"
	Internal       Kind = "internal"
	Dependency     Kind = "dependency_failure"
)
