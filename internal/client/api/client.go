package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/bookgrid/pkg/api"
)

// Пути API сервера расписания
const (
	SchedulePath = "/api/schedule"
	UpdatePath   = "/api/update"
	SnapshotPath = "/api/schedule.json"
)

// DefaultTimeout таймаут одного HTTP запроса
const DefaultTimeout = 30 * time.Second

// ErrNotArray возвращается, когда тело ответа не является JSON массивом
var ErrNotArray = errors.New("response body is not a JSON array")

// Client представляет HTTP клиент для взаимодействия с сервером расписания
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// BaseURL возвращает базовый адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchSchedule загружает массив записей расписания.
// path может быть относительным путем (/api/schedule) или абсолютным URL.
// Тело ответа обязано быть JSON массивом; содержимое элементов не проверяется.
func (c *Client) FetchSchedule(ctx context.Context, path string) ([]api.Record, error) {
	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, fmt.Errorf("fetch schedule request failed: %w", err)
	}

	if !isJSONArray(raw) {
		return nil, ErrNotArray
	}

	var records []api.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode schedule: %w", err)
	}
	return records, nil
}

// UpdateRecord отправляет изменение одной ячейки на сервер (POST /api/update)
func (c *Client) UpdateRecord(ctx context.Context, req api.UpdateRequest) (*api.UpdateResponse, error) {
	var resp api.UpdateResponse
	err := c.doRequest(ctx, http.MethodPost, UpdatePath, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("update request failed: %w", err)
	}
	return &resp, nil
}

// resolve строит URL запроса: абсолютные адреса используются как есть
func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.resolve(path)

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && (errResp.Message != "" || errResp.Error != "") {
			msg := errResp.Message
			if msg == "" {
				msg = errResp.Error
			}
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, msg)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func isJSONArray(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
