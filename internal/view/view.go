// Package view отвечает за отрисовку состояния синхронизаторов в консоль
// и за маршрутизацию команд пользователя. Сам по себе он сетью не пользуется:
// каждая команда вызывает ровно одну операцию синхронизатора либо меняет
// локальное поле ввода.
package view

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"

	"gotodo/internal/client"
	"gotodo/internal/models"
	"gotodo/internal/syncer"
)

// Mode — активный список на экране
type Mode string

const (
	ModeTasks Mode = "tasks"
	ModeUsers Mode = "users"
)

// FormState — локальные значения полей ввода. Поля очищаются только
// после успешного завершения операции.
type FormState struct {
	TaskDescription string
	Username        string
	Email           string
	Password        string
}

// View рисует активный список и держит эфемерное состояние формы
type View struct {
	tasks *syncer.TaskSynchronizer
	users *syncer.UserSynchronizer

	mu   sync.Mutex
	mode Mode
	form FormState

	out io.Writer
}

// New создает представление в режиме списка задач
func New(tasks *syncer.TaskSynchronizer, users *syncer.UserSynchronizer, out io.Writer) *View {
	return &View{
		tasks: tasks,
		users: users,
		mode:  ModeTasks,
		out:   out,
	}
}

// Mode возвращает активный режим
func (v *View) Mode() Mode {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.mode
}

// SetMode переключает активный список и перерисовывает экран
func (v *View) SetMode(mode Mode) {
	v.mu.Lock()
	v.mode = mode
	v.mu.Unlock()

	v.Render()
}

// Form возвращает текущее состояние полей ввода
func (v *View) Form() FormState {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.form
}

// Render рисует активный список целиком по текущему состоянию
// синхронизаторов. Функция от состояния: никаких сетевых вызовов.
func (v *View) Render() {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch v.mode {
	case ModeUsers:
		v.renderUsers()
	default:
		v.renderTasks()
	}
}

func (v *View) renderTasks() {
	fmt.Fprintln(v.out, "=== Задачи ===")

	if v.tasks.Loading() {
		fmt.Fprintln(v.out, "Загрузка...")
		return
	}

	tasks := v.tasks.Tasks()
	if len(tasks) == 0 {
		fmt.Fprintln(v.out, "Список пуст — показывать нечего.")
		return
	}

	for i, task := range tasks {
		mark := " "
		if task.Completed {
			mark = "x"
		}
		fmt.Fprintf(v.out, "[%s] %d. %s\n", mark, i+1, task.Description)
	}
}

func (v *View) renderUsers() {
	fmt.Fprintln(v.out, "=== Пользователи ===")

	if v.users.Loading() {
		fmt.Fprintln(v.out, "Загрузка...")
		return
	}

	users := v.users.Users()
	if len(users) == 0 {
		fmt.Fprintln(v.out, "Список пуст — показывать нечего.")
		return
	}

	// Пароль выводится открытым текстом, как его прислал сервер
	for i, user := range users {
		fmt.Fprintf(v.out, "%d. %s <%s> пароль: %s\n", i+1, user.Username, user.Email, user.Password)
	}
}

// notice выводит сообщение, требующее внимания пользователя
func (v *View) notice(message string) {
	fmt.Fprintf(v.out, "!!! %s\n", message)
}

// taskByNumber возвращает задачу по ее порядковому номеру на экране
func (v *View) taskByNumber(arg string) (models.Task, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return models.Task{}, false
	}

	tasks := v.tasks.Tasks()
	if n < 1 || n > len(tasks) {
		return models.Task{}, false
	}

	return tasks[n-1], true
}

// SubmitTask кладет описание в поле формы и отправляет создание задачи.
// Поле очищается только после успешного ответа сервера.
func (v *View) SubmitTask(ctx context.Context, description string) {
	v.mu.Lock()
	v.form.TaskDescription = description
	v.mu.Unlock()

	err := v.tasks.Create(ctx, description)
	if err != nil {
		if syncer.IsValidationError(err) {
			v.notice("Описание задачи не может быть пустым")
		}
		// Сетевые ошибки уже в журнале; список просто не меняется
		return
	}

	v.mu.Lock()
	v.form.TaskDescription = ""
	v.mu.Unlock()
}

// SubmitToggle переключает статус задачи с указанным экранным номером
func (v *View) SubmitToggle(ctx context.Context, arg string) {
	task, ok := v.taskByNumber(arg)
	if !ok {
		v.notice("Нет задачи с таким номером")
		return
	}

	// Ошибка переключения не показывается: чекбокс просто остается прежним
	_ = v.tasks.ToggleComplete(ctx, task.ID, task.Completed)
}

// SubmitUser кладет значения в поля формы и отправляет регистрацию.
// После успеха все три поля сбрасываются; при ошибке значения остаются.
func (v *View) SubmitUser(ctx context.Context, username, email, password string) {
	v.mu.Lock()
	v.form.Username = username
	v.form.Email = email
	v.form.Password = password
	v.mu.Unlock()

	err := v.users.Create(ctx, username, email, password)
	if err != nil {
		if syncer.IsValidationError(err) {
			v.notice("Все поля должны быть заполнены")
			return
		}

		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			v.notice(apiErr.Message)
		} else {
			v.notice("Не удалось создать пользователя")
		}
		return
	}

	v.mu.Lock()
	v.form.Username = ""
	v.form.Email = ""
	v.form.Password = ""
	v.mu.Unlock()
}

// Refresh перезагружает активный список
func (v *View) Refresh(ctx context.Context) {
	switch v.Mode() {
	case ModeUsers:
		_ = v.users.List(ctx)
	default:
		_ = v.tasks.List(ctx)
	}
}

// Watch перерисовывает экран при каждом извещении синхронизаторов.
// Завершается при отмене контекста.
func (v *View) Watch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-v.tasks.Changes():
			v.Render()
		case <-v.users.Changes():
			v.Render()
		}
	}
}
