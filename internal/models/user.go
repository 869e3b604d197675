package models

// User представляет модель пользователя в системе.
// Пароль сериализуется как есть — сервер отдает его открытым текстом,
// и клиент показывает его в списке без изменений.
type User struct {
	ID       string `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
	Password string `json:"password" db:"password"`
}

// CreateUserRequest представляет запрос на регистрацию пользователя
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest представляет запрос на частичное обновление пользователя
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}
