// Package httpclient - общий HTTP-помощник для обращения к бэкенду админ-панели
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"chipadmin/internal/app/client/config"
	"chipadmin/pkg/metrics"
)

const (
	userAgent       = "ChipAdmin-Client/1.0"
	headerRequestID = "X-Request-ID"
)

// RequestOptions - параметры запроса, аналог объекта { data, params } у фронтенда
type RequestOptions struct {
	// Data сериализуется в JSON как есть и отправляется телом запроса
	Data    any
	Params  url.Values
	Headers http.Header
}

// StatusError возвращается, когда сервер ответил статусом >= 400
type StatusError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ошибка сервера: %s (статус %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("ошибка сервера: статус %d", e.StatusCode)
}

// IsNotFound сообщает, что бэкенд ответил 404
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

type Client struct {
	client    *http.Client
	log       *slog.Logger
	metrics   *metrics.Manager
	baseURL   *url.URL
	userAgent string
}

func New(cfg *config.Config, log *slog.Logger, m *metrics.Manager) (*Client, error) {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	h := &Client{
		client:    client,
		log:       log.With(slog.String("component", "http_client")),
		metrics:   m,
		userAgent: userAgent,
	}

	// Адрес сервера из конфига подменяет хост в захардкоженных адресах ресурсов
	if cfg.ServerAddress != "" {
		base, err := parseServerAddress(cfg.ServerAddress, cfg.EnableTLS)
		if err != nil {
			return nil, err
		}
		h.baseURL = base
	}

	return h, nil
}

// parseServerAddress принимает host:port или полный адрес со схемой http/https.
// Путь, query и прочие части адреса не допускаются: подменяются только схема и хост.
func parseServerAddress(addr string, enableTLS bool) (*url.URL, error) {
	addr = strings.TrimRight(strings.TrimSpace(addr), "/")

	if strings.Contains(addr, "://") {
		u, err := url.Parse(addr)
		if err != nil {
			return nil, fmt.Errorf("неверный адрес сервера %q: %w", addr, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, fmt.Errorf("неверный адрес сервера %q: схема %q не поддерживается", addr, u.Scheme)
		}
		if u.Host == "" || u.Path != "" || u.RawQuery != "" || u.User != nil {
			return nil, fmt.Errorf("неверный адрес сервера %q: ожидается scheme://host:port", addr)
		}
		return u, nil
	}

	scheme := "http://"
	if enableTLS {
		scheme = "https://"
	}
	u, err := url.Parse(scheme + addr)
	if err != nil {
		return nil, fmt.Errorf("неверный адрес сервера %q: %w", addr, err)
	}
	if u.Host == "" || u.Host != addr {
		return nil, fmt.Errorf("неверный адрес сервера %q: ожидается host:port", addr)
	}

	return u, nil
}

// Request выполняет запрос и декодирует JSON-ответ в out (если out != nil)
func (h *Client) Request(ctx context.Context, method, rawURL string, opts *RequestOptions, out any) error {
	target, err := h.resolve(rawURL, opts)
	if err != nil {
		return err
	}

	resp, err := h.doRequest(ctx, method, target, opts)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, out)
}

func (h *Client) resolve(rawURL string, opts *RequestOptions) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора адреса %q: %w", rawURL, err)
	}

	if h.baseURL != nil {
		u.Scheme = h.baseURL.Scheme
		u.Host = h.baseURL.Host
	}

	if opts != nil && len(opts.Params) > 0 {
		q := u.Query()
		for k, vs := range opts.Params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	return u, nil
}

func (h *Client) doRequest(ctx context.Context, method string, target *url.URL, opts *RequestOptions) (*http.Response, error) {
	var reqBody io.Reader
	if opts != nil && opts.Data != nil {
		jsonData, err := json.Marshal(opts.Data)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	method = strings.ToUpper(method)
	req, err := http.NewRequestWithContext(ctx, method, target.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set(headerRequestID, requestID)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if opts != nil {
		for k, vs := range opts.Headers {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
	}

	h.log.Debug("Отправка запроса",
		slog.String("method", method),
		slog.String("url", req.URL.String()),
		slog.String("request_id", requestID),
	)

	start := time.Now()
	resp, err := h.client.Do(req)
	resource := resourceLabel(target)
	if err != nil {
		h.metrics.ObserveClientRequest(resource, method, 0, time.Since(start))
		return nil, fmt.Errorf("ошибка выполнения запроса %s %s: %w", method, target.Redacted(), err)
	}
	h.metrics.ObserveClientRequest(resource, method, resp.StatusCode, time.Since(start))

	return resp, nil
}

func (h *Client) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		slog.Int("status", resp.StatusCode),
		slog.Int("size", len(body)),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
			Body:       body,
		}
	}

	if result == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if raw, ok := result.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], body...)
		return nil
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("ошибка парсинга ответа: %w", err)
	}

	return nil
}

func errorMessage(body []byte) string {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Msg     string `json:"msg"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	switch {
	case errResp.Error != "":
		return errResp.Error
	case errResp.Message != "":
		return errResp.Message
	default:
		return errResp.Msg
	}
}

// resourceLabel берет сегмент пути после /api/, например chipform
func resourceLabel(u *url.URL) string {
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, p := range parts {
		if p == "api" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return "unknown"
}
