package auth

// LoginRequest carries login credentials. Remember extends the session
// from the default one hour to seven days.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// Result reports whether an auth operation succeeded. Message is only
// set on failure.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func Succeeded() Result {
	return Result{Success: true}
}

func Failed(message string) Result {
	return Result{Success: false, Message: message}
}
