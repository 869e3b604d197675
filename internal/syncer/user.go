package syncer

import (
	"context"
	"log"
	"strings"
	"sync"

	"gotodo/internal/models"
)

// UserAPI описывает операции API, которые нужны синхронизатору пользователей
type UserAPI interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, username, email, password string) (models.User, error)
}

// UserSynchronizer владеет локальным списком пользователей.
// Операций обновления и удаления у него нет.
type UserSynchronizer struct {
	api UserAPI

	mu      sync.RWMutex
	users   []models.User
	version uint64
	loading bool

	changes chan struct{}
}

// NewUserSynchronizer создает синхронизатор с пустым списком пользователей
func NewUserSynchronizer(api UserAPI) *UserSynchronizer {
	return &UserSynchronizer{
		api:     api,
		users:   []models.User{},
		changes: make(chan struct{}, 1),
	}
}

// Changes возвращает канал извещений об изменении состояния
func (s *UserSynchronizer) Changes() <-chan struct{} {
	return s.changes
}

func (s *UserSynchronizer) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

// Users возвращает опубликованный список пользователей
func (s *UserSynchronizer) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.users
}

// Version возвращает номер текущего опубликованного состояния
func (s *UserSynchronizer) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// Loading сообщает, идет ли сейчас начальная загрузка списка
func (s *UserSynchronizer) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// List запрашивает список пользователей и целиком замещает локальное
// состояние. При ошибке прежнее состояние не трогается.
func (s *UserSynchronizer) List(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	s.notify()

	users, err := s.api.GetUsers(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.mu.Unlock()
		s.notify()
		log.Printf("Ошибка загрузки списка пользователей: %v", err)
		return err
	}

	s.users = users
	s.version++
	s.mu.Unlock()
	s.notify()

	return nil
}

// Create регистрирует пользователя. Все три поля обязательны после
// обрезки пробелов; при пустом поле сетевой вызов не выполняется.
// После успеха пользователь добавляется в список и запускается
// повторная загрузка всей коллекции для сверки с сервером.
func (s *UserSynchronizer) Create(ctx context.Context, username, email, password string) error {
	if strings.TrimSpace(username) == "" ||
		strings.TrimSpace(email) == "" ||
		strings.TrimSpace(password) == "" {
		return ErrEmptyFields
	}

	user, err := s.api.CreateUser(ctx, username, email, password)
	if err != nil {
		log.Printf("Ошибка создания пользователя: %v", err)
		return err
	}

	s.mu.Lock()
	next := make([]models.User, 0, len(s.users)+1)
	next = append(next, s.users...)
	next = append(next, user)
	s.users = next
	s.version++
	s.mu.Unlock()
	s.notify()

	// Сверочная перезагрузка; ее ошибка уже записана в журнал внутри List
	_ = s.List(ctx)

	return nil
}
