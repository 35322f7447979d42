package models

type User struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Address *Address `json:"address,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"john@example.com"`
	Password string `json:"password" example:"secret"`
}

type RegisterRequest struct {
	Name     string `json:"name" example:"John Doe"`
	Email    string `json:"email" example:"john@example.com"`
	Phone    string `json:"phone" example:"+254712345678"`
	Password string `json:"password" example:"secret"`
}

// AuthState is what the account endpoints return.
type AuthState struct {
	Authenticated bool  `json:"authenticated"`
	Loading       bool  `json:"loading"`
	User          *User `json:"user,omitempty"`
}
