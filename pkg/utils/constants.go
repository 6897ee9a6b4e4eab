package utils

const (
	SignedIn      = "signed in successfully"
	SignedOut     = "signed out successfully"
	SessionRead   = "session retrieved"
	PageRendered  = "page retrieved"
	SignInNeeded  = "sign in to continue"
	BackendFailed = "failed to reach backend service"
)
