package syncer

import (
	"context"
	"log"
	"strings"
	"sync"

	"gotodo/internal/models"
)

// TaskAPI описывает операции API, которые нужны синхронизатору задач
type TaskAPI interface {
	GetTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, description string) (models.Task, error)
	UpdateTask(ctx context.Context, id string, completed bool) (models.Task, error)
}

// TaskSynchronizer владеет локальным списком задач
type TaskSynchronizer struct {
	api TaskAPI

	mu      sync.RWMutex
	tasks   []models.Task
	version uint64
	loading bool

	changes chan struct{}
}

// NewTaskSynchronizer создает синхронизатор с пустым списком задач
func NewTaskSynchronizer(api TaskAPI) *TaskSynchronizer {
	return &TaskSynchronizer{
		api:     api,
		tasks:   []models.Task{},
		changes: make(chan struct{}, 1),
	}
}

// Changes возвращает канал извещений об изменении состояния.
// Извещения склеиваются: непрочитанное извещение не дублируется.
func (s *TaskSynchronizer) Changes() <-chan struct{} {
	return s.changes
}

func (s *TaskSynchronizer) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

// Tasks возвращает опубликованный список задач. Срез неизменяемый:
// все операции публикуют новую копию вместо правки на месте.
func (s *TaskSynchronizer) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tasks
}

// Version возвращает номер текущего опубликованного состояния
func (s *TaskSynchronizer) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// Loading сообщает, идет ли сейчас начальная загрузка списка
func (s *TaskSynchronizer) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// List запрашивает список задач и целиком замещает локальное состояние.
// При ошибке прежнее состояние не трогается.
func (s *TaskSynchronizer) List(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	s.notify()

	tasks, err := s.api.GetTasks(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.mu.Unlock()
		s.notify()
		log.Printf("Ошибка загрузки списка задач: %v", err)
		return err
	}

	s.tasks = tasks
	s.version++
	s.mu.Unlock()
	s.notify()

	return nil
}

// Create создает задачу. Пустое после обрезки пробелов описание
// отклоняется локально, без сетевого вызова. Задача попадает в список
// только после успешного ответа сервера.
func (s *TaskSynchronizer) Create(ctx context.Context, description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}

	task, err := s.api.CreateTask(ctx, description)
	if err != nil {
		log.Printf("Ошибка создания задачи: %v", err)
		return err
	}

	s.mu.Lock()
	next := make([]models.Task, 0, len(s.tasks)+1)
	next = append(next, s.tasks...)
	next = append(next, task)
	s.tasks = next
	s.version++
	s.mu.Unlock()
	s.notify()

	return nil
}

// ToggleComplete отправляет серверу противоположный статус задачи.
// После подтверждения в списке замещается только запись с совпавшим id,
// остальные записи остаются теми же значениями на тех же позициях.
func (s *TaskSynchronizer) ToggleComplete(ctx context.Context, taskID string, currentStatus bool) error {
	updated, err := s.api.UpdateTask(ctx, taskID, !currentStatus)
	if err != nil {
		log.Printf("Ошибка обновления задачи %s: %v", taskID, err)
		return err
	}

	s.mu.Lock()
	next := make([]models.Task, len(s.tasks))
	copy(next, s.tasks)
	for i := range next {
		if next[i].ID == updated.ID {
			next[i] = updated
		}
	}
	s.tasks = next
	s.version++
	s.mu.Unlock()
	s.notify()

	return nil
}
