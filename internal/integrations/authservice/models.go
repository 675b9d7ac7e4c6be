package authservice

// Identity результат проверки токена в AuthService
type Identity struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// ErrorResponse модель ошибки от AuthService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
