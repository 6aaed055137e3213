package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"FitHub/internal/cli/repo"
)

// RequestOptions описывает один запрос к API.
type RequestOptions struct {
	// Method по умолчанию GET.
	Method string
	// Body кодируется в JSON; json.RawMessage и []byte отправляются как есть.
	Body any
	// Headers накладываются поверх Content-Type по умолчанию.
	Headers map[string]string
}

// Client выполняет запросы к бэкенду, подставляя bearer-токен из хранилища.
type Client struct {
	baseURL string
	tokens  repo.TokenStore
	http    *http.Client
	logger  *zap.SugaredLogger
}

// NewClient создаёт клиента. baseURL вычисляется один раз при старте
// (см. config.ResolveBaseURL) и дальше не меняется.
func NewClient(baseURL string, tokens repo.TokenStore, httpClient *http.Client, logger *zap.SugaredLogger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{baseURL: baseURL, tokens: tokens, http: httpClient, logger: logger}
}

// BaseURL возвращает адрес бэкенда, с которым работает клиент.
func (c *Client) BaseURL() string { return c.baseURL }

// Request отправляет запрос на baseURL+path и возвращает JSON-тело ответа.
// Все отказы, кроме отмены контекста и ошибок кодирования тела, приходят как *APIError.
func (c *Client) Request(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	body, err := encodeBody(opts.Body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	// токен ставится последним: заголовки вызывающего его не перекроют
	if token, ok := c.tokens.GetToken(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if isNetworkError(ctx, err) {
			c.logger.Warnw("api: server unreachable", "method", method, "path", path, "base_url", c.baseURL, "error", err)
			return nil, &APIError{Message: networkMessage(c.baseURL), cause: err}
		}
		return nil, err
	}
	defer resp.Body.Close()

	c.logger.Debugw("api: response", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))
	return readResponse(resp)
}

func encodeBody(v any) (io.Reader, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		return bytes.NewReader(b), nil
	case []byte:
		return bytes.NewReader(b), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}

// readResponse разбирает ответ по объявленному Content-Type.
// Ответ не в JSON всегда считается отказом, независимо от статуса.
func readResponse(resp *http.Response) (json.RawMessage, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if !isJSONContentType(resp.Header.Get("Content-Type")) {
		msg := strings.TrimSpace(string(data))
		if msg == "" {
			msg = fmt.Sprintf("Request failed with status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return nil, &APIError{Message: msg, Status: resp.StatusCode}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("null")
	}
	if !json.Valid(data) {
		return nil, &APIError{Message: "Invalid JSON response from server", Status: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := messageField(data)
		if msg == "" {
			msg = fmt.Sprintf("Request failed with status %d", resp.StatusCode)
		}
		return nil, &APIError{Message: msg, Status: resp.StatusCode}
	}
	return json.RawMessage(data), nil
}

func isJSONContentType(v string) bool {
	if v == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(v)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}

// messageField достаёт строковое поле message из JSON-объекта.
func messageField(data []byte) string {
	var payload struct {
		Message any `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	s, _ := payload.Message.(string)
	return s
}

// isNetworkError отличает «сервер недостижим» от отмены вызывающим.
func isNetworkError(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	// *url.Error сам реализует net.Error, поэтому смотрим на причину
	var uerr *url.Error
	if errors.As(err, &uerr) {
		err = uerr.Err
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
