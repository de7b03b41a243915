package admin

// LoginDTO is the request body for admin login.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
