package database

import (
	"database/sql"
	"fmt"

	"gotodo/internal/models"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

// Storage — хранилище задач и пользователей на sqlite
type Storage struct {
	db *sqlx.DB
}

// New открывает базу данных, создает таблицы и наполняет их
// стартовыми данными, если база пустая
func New(dbFile string) (*Storage, error) {
	db, err := sqlx.Connect("sqlite", dbFile)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Connect: %w", err)
	}

	s := &Storage{db: db}

	if err := s.tryCreateTables(); err != nil {
		return nil, fmt.Errorf("tryCreateTables: %w", err)
	}

	if err := s.seed(); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	return s, nil
}

func (s *Storage) tryCreateTables() error {
	if _, err := s.db.Exec(createTasksTableQuery); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}

	if _, err := s.db.Exec(createUsersTableQuery); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	return nil
}

// seed наполняет пустую базу стартовыми записями
func (s *Storage) seed() error {
	var taskCount int
	if err := s.db.Get(&taskCount, countTasksQuery); err != nil {
		return fmt.Errorf("count tasks: %w", err)
	}

	if taskCount == 0 {
		seedTasks := []models.Task{
			{ID: "abc", Description: "Learn FastAPI", Completed: false},
			{ID: "def", Description: "Integrate React Frontend", Completed: true},
			{ID: "ghi", Description: "Review technical test code", Completed: false},
		}
		for _, task := range seedTasks {
			if err := s.InsertTask(task); err != nil {
				return err
			}
		}
	}

	var userCount int
	if err := s.db.Get(&userCount, countUsersQuery); err != nil {
		return fmt.Errorf("count users: %w", err)
	}

	if userCount == 0 {
		seedUsers := []models.User{
			{ID: "user1", Username: "alice", Email: "alice@example.com", Password: "securepassword123"},
			{ID: "user2", Username: "bob", Email: "bob@example.com", Password: "anothersecret"},
		}
		for _, user := range seedUsers {
			if err := s.InsertUser(user); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) GetTasks() ([]models.Task, error) {
	tasks := []models.Task{}

	if err := s.db.Select(&tasks, getTasksQuery); err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}

	return tasks, nil
}

func (s *Storage) GetTaskByID(id string) (models.Task, error) {
	var task models.Task

	err := s.db.Get(&task, getTaskByIDQuery, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Task{}, ErrNotFound
		}
		return models.Task{}, fmt.Errorf("select task: %w", err)
	}

	return task, nil
}

func (s *Storage) InsertTask(task models.Task) error {
	if _, err := s.db.Exec(insertTaskQuery, task.ID, task.Description, task.Completed); err != nil {
		return fmt.Errorf("insert task: %w", err)
	}

	return nil
}

// UpdateTaskCompleted меняет статус задачи и возвращает ее новое состояние
func (s *Storage) UpdateTaskCompleted(id string, completed bool) (models.Task, error) {
	res, err := s.db.Exec(updateTaskQuery, completed, id)
	if err != nil {
		return models.Task{}, fmt.Errorf("update task: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return models.Task{}, fmt.Errorf("rows affected: %w", err)
	}

	if n == 0 {
		return models.Task{}, ErrNotFound
	}

	return s.GetTaskByID(id)
}

func (s *Storage) ClearTasks() error {
	if _, err := s.db.Exec(deleteTasksQuery); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}

	return nil
}

func (s *Storage) GetUsers() ([]models.User, error) {
	users := []models.User{}

	if err := s.db.Select(&users, getUsersQuery); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}

	return users, nil
}

func (s *Storage) GetUserByID(id string) (models.User, error) {
	var user models.User

	err := s.db.Get(&user, getUserByIDQuery, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("select user: %w", err)
	}

	return user, nil
}

// UsernameExists проверяет, занято ли имя пользователя
func (s *Storage) UsernameExists(username string) (bool, error) {
	var count int

	if err := s.db.Get(&count, countUsernameQuery, username); err != nil {
		return false, fmt.Errorf("count username: %w", err)
	}

	return count > 0, nil
}

func (s *Storage) InsertUser(user models.User) error {
	if _, err := s.db.Exec(insertUserQuery, user.ID, user.Username, user.Email, user.Password); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (s *Storage) UpdateUser(user models.User) error {
	res, err := s.db.Exec(updateUserQuery, user.Username, user.Email, user.Password, user.ID)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteUser удаляет пользователя и возвращает количество удаленных строк.
// Удаление несуществующего пользователя не считается ошибкой.
func (s *Storage) DeleteUser(id string) (int64, error) {
	res, err := s.db.Exec(deleteUserQuery, id)
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	return n, nil
}

func (s *Storage) ClearUsers() error {
	if _, err := s.db.Exec(deleteUsersQuery); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}

	return nil
}
