package authservice

// Session is the credential service's view of a signed-in user.
// The console only needs the user id and whether the email is confirmed;
// token handling stays inside the credential service.
type Session struct {
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	EmailConfirmed bool   `json:"email_confirmed"`
	AccessToken    string `json:"access_token"`
}

// Profile carries the optional registration profile fields.
type Profile struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ErrorResponse is the error body shape of the credential service.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
