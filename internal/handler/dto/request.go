package dto

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type BookRequest struct {
	SessionID int64 `json:"session_id" binding:"required"`
	EventID   int64 `json:"event_id" binding:"required"`
}

type UpdateSessionRequest struct {
	Client string `json:"client"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"`
}
