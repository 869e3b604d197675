package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"gotodo/internal/models"
)

// Storage описывает хранилище, с которым работают обработчики
type Storage interface {
	GetTasks() ([]models.Task, error)
	GetTaskByID(id string) (models.Task, error)
	InsertTask(task models.Task) error
	UpdateTaskCompleted(id string, completed bool) (models.Task, error)
	ClearTasks() error

	GetUsers() ([]models.User, error)
	GetUserByID(id string) (models.User, error)
	UsernameExists(username string) (bool, error)
	InsertUser(user models.User) error
	UpdateUser(user models.User) error
	DeleteUser(id string) (int64, error)
	ClearUsers() error
}

// SetupRouter настраивает маршруты для API
func SetupRouter(storage Storage) *chi.Mux {
	h := NewHandler(storage)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/tasks", h.GetTasks)
	r.Post("/tasks", h.CreateTask)
	r.Put("/tasks/{id}", h.UpdateTask)

	r.Get("/users", h.GetUsers)
	r.Post("/users", h.CreateUser)
	r.Get("/users/{id}", h.GetUserByID)
	r.Put("/users/{id}", h.UpdateUser)
	r.Delete("/users/{id}", h.DeleteUser)

	// Отладочные маршруты
	r.Post("/debug/clear_tasks", h.ClearTasks)
	r.Post("/debug/clear_users", h.ClearUsers)

	return r
}
