package models

// Task представляет задачу в списке дел
type Task struct {
	ID          string `json:"id" db:"id"`
	Description string `json:"description" db:"description"`
	Completed   bool   `json:"completed" db:"completed"`
}

// CreateTaskRequest представляет запрос на создание задачи
type CreateTaskRequest struct {
	Description string `json:"description"`
}

// UpdateTaskRequest представляет запрос на изменение статуса задачи.
// Указатель нужен, чтобы отличать "completed не передан" от "completed=false".
type UpdateTaskRequest struct {
	Completed *bool `json:"completed"`
}

// ErrorDetail — вложенное сообщение об ошибке в теле неуспешного ответа
type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse представляет структурированное тело ошибки сервера
type ErrorResponse struct {
	Detail ErrorDetail `json:"detail"`
}
