package handler

// messageResponse is the standard envelope for status and error messages.
type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// authResponse is returned by register and login: the public identity only,
// never the id or any password material. The session rides in the cookie.
type authResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

type verifyResponse struct {
	Message string       `json:"message"`
	User    authResponse `json:"user"`
}
