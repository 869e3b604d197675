package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gotodo/internal/database"
	"gotodo/internal/models"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Handler содержит обработчики HTTP API
type Handler struct {
	storage Storage
}

func NewHandler(storage Storage) *Handler {
	return &Handler{storage: storage}
}

func sendJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Ошибка сериализации ответа: %v", err)
	}
}

func sendJSONError(w http.ResponseWriter, statusCode int, message string) {
	sendJSON(w, statusCode, map[string]string{"error": message})
}

// sendDetailError отправляет структурированное тело ошибки — в том же формате,
// в котором его ждет клиент при создании пользователя
func sendDetailError(w http.ResponseWriter, statusCode int, code, message string) {
	sendJSON(w, statusCode, models.ErrorResponse{
		Detail: models.ErrorDetail{Code: code, Message: message},
	})
}

// GetTasks возвращает все задачи
func (h *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.storage.GetTasks()
	if err != nil {
		log.Printf("Ошибка получения списка задач: %v", err)
		sendJSONError(w, http.StatusInternalServerError, "Не удалось получить список задач")
		return
	}

	sendJSON(w, http.StatusOK, tasks)
}

// CreateTask создает новую задачу
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	if strings.TrimSpace(req.Description) == "" {
		sendJSONError(w, http.StatusBadRequest, "Описание задачи не может быть пустым")
		return
	}

	task := models.Task{
		ID:          uuid.New().String(),
		Description: req.Description,
		Completed:   false,
	}

	if err := h.storage.InsertTask(task); err != nil {
		log.Printf("Ошибка создания задачи: %v", err)
		sendJSONError(w, http.StatusInternalServerError, "Не удалось создать задачу")
		return
	}

	log.Printf("Создана задача %s: %q", task.ID, task.Description)
	sendJSON(w, http.StatusOK, task)
}

// UpdateTask меняет статус выполнения задачи
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	// Если completed не передан, статус не меняется — возвращаем текущее состояние
	if req.Completed == nil {
		task, err := h.storage.GetTaskByID(id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				sendJSONError(w, http.StatusNotFound, "Задача не найдена")
				return
			}
			log.Printf("Ошибка получения задачи %s: %v", id, err)
			sendJSONError(w, http.StatusInternalServerError, "Не удалось получить задачу")
			return
		}

		sendJSON(w, http.StatusOK, task)
		return
	}

	task, err := h.storage.UpdateTaskCompleted(id, *req.Completed)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			sendJSONError(w, http.StatusNotFound, "Задача не найдена")
			return
		}
		log.Printf("Ошибка обновления задачи %s: %v", id, err)
		sendJSONError(w, http.StatusInternalServerError, "Не удалось обновить задачу")
		return
	}

	log.Printf("Задача %s: completed=%v", task.ID, task.Completed)
	sendJSON(w, http.StatusOK, task)
}

// ClearTasks удаляет все задачи (отладочный маршрут)
func (h *Handler) ClearTasks(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.ClearTasks(); err != nil {
		log.Printf("Ошибка очистки задач: %v", err)
		sendJSONError(w, http.StatusInternalServerError, "Не удалось очистить задачи")
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"message": "All tasks cleared successfully."})
}

// GetUsers возвращает всех пользователей
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.storage.GetUsers()
	if err != nil {
		log.Printf("Ошибка получения списка пользователей: %v", err)
		sendJSONError(w, http.StatusInternalServerError, "Не удалось получить список пользователей")
		return
	}

	sendJSON(w, http.StatusOK, users)
}

// CreateUser создает нового пользователя
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendDetailError(w, http.StatusBadRequest, "invalid_request", "Неверный формат запроса")
		return
	}

	if len(req.Username) < minUsernameLen {
		sendDetailError(w, http.StatusBadRequest, "invalid_username",
			"Имя пользователя должно содержать не менее 3 символов")
		return
	}

	if !emailPattern.MatchString(req.Email) {
		sendDetailError(w, http.StatusBadRequest, "invalid_email", "Некорректный адрес почты")
		return
	}

	if len(req.Password) < minPasswordLen {
		sendDetailError(w, http.StatusBadRequest, "invalid_password",
			"Пароль должен содержать не менее 6 символов")
		return
	}

	exists, err := h.storage.UsernameExists(req.Username)
	if err != nil {
		log.Printf("Ошибка проверки имени пользователя: %v", err)
		sendDetailError(w, http.StatusInternalServerError, "internal_error", "Ошибка при регистрации")
		return
	}

	if exists {
		sendDetailError(w, http.StatusBadRequest, "duplicate_username", "Username already exists.")
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := h.storage.InsertUser(user); err != nil {
		log.Printf("Ошибка создания пользователя: %v", err)
		sendDetailError(w, http.StatusInternalServerError, "internal_error", "Ошибка при регистрации")
		return
	}

	log.Printf("Создан пользователь %s (%s)", user.Username, user.ID)
	sendJSON(w, http.StatusOK, user)
}

// GetUserByID возвращает одного пользователя
func (h *Handler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.storage.GetUserByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			sendJSONError(w, http.StatusNotFound, "Пользователь не найден")
			return
		}
		log.Printf("Ошибка получения пользователя %s: %v", id, err)
		sendJSONError(w, http.StatusInternalServerError, "Не удалось получить пользователя")
		return
	}

	sendJSON(w, http.StatusOK, user)
}

// UpdateUser частично обновляет пользователя
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	user, err := h.storage.GetUserByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			sendJSONError(w, http.StatusNotFound, "Пользователь не найден")
			return
		}
		log.Printf("Ошибка получения пользователя %s: %v", id, err)
		sendJSONError(w, http.StatusInternalServerError, "Не удалось получить пользователя")
		return
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		user.Password = *req.Password
	}

	if err := h.storage.UpdateUser(user); err != nil {
		log.Printf("Ошибка обновления пользователя %s: %v", id, err)
		sendJSONError(w, http.StatusInternalServerError, "Не удалось обновить пользователя")
		return
	}

	sendJSON(w, http.StatusOK, user)
}

// DeleteUser удаляет пользователя. Ответ успешный в обоих случаях,
// отличается только текст сообщения.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	n, err := h.storage.DeleteUser(id)
	if err != nil {
		log.Printf("Ошибка удаления пользователя %s: %v", id, err)
		sendJSONError(w, http.StatusInternalServerError, "Не удалось удалить пользователя")
		return
	}

	if n == 0 {
		sendJSON(w, http.StatusOK, map[string]string{
			"message": "User with ID '" + id + "' was not found.",
		})
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{
		"message": "User with ID '" + id + "' deleted successfully.",
	})
}

// ClearUsers удаляет всех пользователей (отладочный маршрут)
func (h *Handler) ClearUsers(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.ClearUsers(); err != nil {
		log.Printf("Ошибка очистки пользователей: %v", err)
		sendJSONError(w, http.StatusInternalServerError, "Не удалось очистить пользователей")
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"message": "All users cleared successfully."})
}
