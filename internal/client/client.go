package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"gotodo/internal/models"
)

// APIError представляет структурированную ошибку, которую сервер
// возвращает в теле неуспешного ответа
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("сервер вернул статус %d", e.StatusCode)
}

// Client — HTTP-клиент для API задач и пользователей.
// Таймаут не задается: зависший запрос висит до ответа сервера.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New создает новый экземпляр клиента API
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("сериализация тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("создание запроса: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("запрос %s %s: %w", method, path, err)
	}

	return resp, nil
}

// decodeError читает тело неуспешного ответа и достает вложенное
// сообщение об ошибке, если оно там есть
func decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var errResp models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
		apiErr.Code = errResp.Detail.Code
		apiErr.Message = errResp.Detail.Message
	}

	return apiErr
}

// GetTasks запрашивает полный список задач
func (c *Client) GetTasks(ctx context.Context) ([]models.Task, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/tasks", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET /tasks: сервер вернул статус %d", resp.StatusCode)
	}

	var tasks []models.Task
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		return nil, fmt.Errorf("разбор списка задач: %w", err)
	}

	return tasks, nil
}

// CreateTask создает новую задачу и возвращает ее с назначенным сервером id
func (c *Client) CreateTask(ctx context.Context, description string) (models.Task, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/tasks", models.CreateTaskRequest{
		Description: description,
	})
	if err != nil {
		return models.Task{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Task{}, fmt.Errorf("POST /tasks: сервер вернул статус %d", resp.StatusCode)
	}

	var task models.Task
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		return models.Task{}, fmt.Errorf("разбор созданной задачи: %w", err)
	}

	return task, nil
}

// UpdateTask меняет статус выполнения задачи и возвращает ее новое состояние
func (c *Client) UpdateTask(ctx context.Context, id string, completed bool) (models.Task, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/tasks/"+id, models.UpdateTaskRequest{
		Completed: &completed,
	})
	if err != nil {
		return models.Task{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Task{}, fmt.Errorf("PUT /tasks/%s: сервер вернул статус %d", id, resp.StatusCode)
	}

	var task models.Task
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		return models.Task{}, fmt.Errorf("разбор обновленной задачи: %w", err)
	}

	return task, nil
}

// GetUsers запрашивает полный список пользователей
func (c *Client) GetUsers(ctx context.Context) ([]models.User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/users", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET /users: сервер вернул статус %d", resp.StatusCode)
	}

	var users []models.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("разбор списка пользователей: %w", err)
	}

	return users, nil
}

// CreateUser регистрирует пользователя. При неуспешном статусе возвращает
// *APIError с сообщением из тела ответа, когда сервер его прислал.
func (c *Client) CreateUser(ctx context.Context, username, email, password string) (models.User, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/users", models.CreateUserRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return models.User{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.User{}, decodeError(resp)
	}

	var user models.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return models.User{}, fmt.Errorf("разбор созданного пользователя: %w", err)
	}

	return user, nil
}
