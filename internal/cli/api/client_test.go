package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FitHub/internal/cli/repo"
	"FitHub/internal/cli/repo/memory"
)

func newStore(t *testing.T, token string) *repo.SessionStore {
	t.Helper()
	st := repo.NewSessionStore(memory.New(), nil)
	if token != "" {
		require.True(t, st.SetToken(context.Background(), token).OK())
	}
	return st
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestRequest_NoToken_SendsUnauthenticated(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"), "Authorization must be absent without a token")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"ok":true}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, newStore(t, ""), ts.Client(), nil)
	raw, err := c.Request(context.Background(), "/api/auth/me", RequestOptions{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
}

func TestRequest_TokenAttachedAndBodySent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		assert.Equal(t, http.MethodPost, r.Method)
		var m map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&m))
		assert.Equal(t, float64(1), m["x"]) // JSON number → float64
		writeJSON(w, http.StatusCreated, `{"created":true}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, newStore(t, "tok123"), ts.Client(), nil)
	raw, err := c.Request(context.Background(), "/things", RequestOptions{Method: http.MethodPost, Body: map[string]any{"x": 1}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"created":true}`, string(raw))
}

func TestRequest_HeaderMergeOrder(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// caller overrides Content-Type, but cannot replace the bearer header
		assert.Equal(t, "application/vnd.custom+json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer real", r.Header.Get("Authorization"))
		assert.Equal(t, "yes", r.Header.Get("X-Extra"))
		writeJSON(w, http.StatusOK, `{}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, newStore(t, "real"), ts.Client(), nil)
	_, err := c.Request(context.Background(), "/", RequestOptions{Headers: map[string]string{
		"Content-Type":  "application/vnd.custom+json",
		"authorization": "Bearer forged",
		"X-Extra":       "yes",
	}})
	require.NoError(t, err)
}

func TestRequest_CallerAuthorizationKeptWithoutToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Basic abc", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, newStore(t, ""), ts.Client(), nil)
	_, err := c.Request(context.Background(), "/", RequestOptions{Headers: map[string]string{"Authorization": "Basic abc"}})
	require.NoError(t, err)
}

func TestRequest_RawBodyVerbatim(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"a" : 1}`, string(b))
		writeJSON(w, http.StatusOK, `{}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, newStore(t, ""), ts.Client(), nil)
	_, err := c.Request(context.Background(), "/", RequestOptions{Method: http.MethodPut, Body: json.RawMessage(`{"a" : 1}`)})
	require.NoError(t, err)
}

func TestRequest_PathConcatenatedVerbatim(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/x", r.URL.Path)
		assert.Equal(t, "q=1", r.URL.RawQuery)
		writeJSON(w, http.StatusOK, `{}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL+"/api", newStore(t, ""), ts.Client(), nil)
	_, err := c.Request(context.Background(), "/x?q=1", RequestOptions{})
	require.NoError(t, err)
}

func TestRequest_NonJSONSuccessStillFails(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "<html>oops</html>\n")
	}))
	defer ts.Close()

	c := NewClient(ts.URL, newStore(t, ""), ts.Client(), nil)
	_, err := c.Request(context.Background(), "/", RequestOptions{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "<html>oops</html>", apiErr.Message)
	assert.Equal(t, http.StatusOK, apiErr.Status)
}

func TestRequest_NonJSONEmptyBodyUsesStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, newStore(t, ""), ts.Client(), nil)
	_, err := c.Request(context.Background(), "/", RequestOptions{})
	require.Error(t, err)
	assert.Equal(t, "Request failed with status 502 Bad Gateway", err.Error())
}

func TestRequest_MissingContentTypeIsNotJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil // отключаем автоопределение типа
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{"looks":"like json"}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, newStore(t, ""), ts.Client(), nil)
	_, err := c.Request(context.Background(), "/", RequestOptions{})
	require.Error(t, err)
	assert.Equal(t, `{"looks":"like json"}`, err.Error())
}

func TestRequest_JSONErrorUsesMessageVerbatim(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"Invalid email or password"}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, newStore(t, ""), ts.Client(), nil)
	_, err := c.Request(context.Background(), "/", RequestOptions{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestRequest_JSONErrorWithoutMessage(t *testing.T) {
	for _, body := range []string{`{"error":"x"}`, `{"message":""}`, `{"message":42}`, `[]`, ``} {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, body)
		}))
		c := NewClient(ts.URL, newStore(t, ""), ts.Client(), nil)
		_, err := c.Request(context.Background(), "/", RequestOptions{})
		ts.Close()
		require.Error(t, err, "body %q", body)
		assert.Equal(t, "Request failed with status 500", err.Error(), "body %q", body)
	}
}

func TestRequest_ProblemJSONIsJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":"bad input"}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, newStore(t, ""), ts.Client(), nil)
	_, err := c.Request(context.Background(), "/", RequestOptions{})
	require.Error(t, err)
	assert.Equal(t, "bad input", err.Error())
}

func TestRequest_MalformedJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, newStore(t, ""), ts.Client(), nil)
	_, err := c.Request(context.Background(), "/", RequestOptions{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "Invalid JSON")
}

func TestRequest_EmptyJSONBodyIsNull(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, "")
	}))
	defer ts.Close()

	c := NewClient(ts.URL, newStore(t, ""), ts.Client(), nil)
	raw, err := c.Request(context.Background(), "/", RequestOptions{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

func TestRequest_NetworkErrorRewritten(t *testing.T) {
	// свободный порт: слушаем и сразу закрываем
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	base := "http://" + ln.Addr().String()
	require.NoError(t, ln.Close())

	c := NewClient(base, newStore(t, ""), nil, nil)
	_, err = c.Request(context.Background(), "/api/auth/me", RequestOptions{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, base)
	assert.Contains(t, apiErr.Message, "10.0.2.2")
	assert.Zero(t, apiErr.Status)

	var opErr *net.OpError
	assert.True(t, errors.As(err, &opErr), "original cause must stay reachable via Unwrap")
}

func TestRequest_CanceledContextPropagatesUnchanged(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewClient(ts.URL, newStore(t, ""), ts.Client(), nil)
	_, err := c.Request(ctx, "/", RequestOptions{})
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "cancellation must not be rewritten")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRequest_MarshalErrorPropagates(t *testing.T) {
	c := NewClient("http://example.invalid", newStore(t, ""), nil, nil)
	_, err := c.Request(context.Background(), "/", RequestOptions{Method: http.MethodPost, Body: map[string]any{"c": make(chan int)}})
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestRequest_UnsupportedSchemePropagates(t *testing.T) {
	c := NewClient("ftp://example.com", newStore(t, ""), nil, nil)
	_, err := c.Request(context.Background(), "/", RequestOptions{})
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.True(t, strings.Contains(err.Error(), "unsupported protocol scheme"))
}

func TestClient_BaseURL(t *testing.T) {
	c := NewClient("http://localhost:3000", newStore(t, ""), nil, nil)
	assert.Equal(t, "http://localhost:3000", c.BaseURL())
}
