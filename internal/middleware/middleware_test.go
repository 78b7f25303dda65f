package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type staticAuth string

func (a staticAuth) Authorize(userID string) error {
	if userID == "" || userID != string(a) {
		return domain.ErrUnauthorized
	}
	return nil
}

func newEngine(t *testing.T) *ginext.Engine {
	t.Helper()
	log := newTestLogger(t)

	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log), Recovery(log))

	api := r.Group("/api", OperatorAuth(staticAuth("1000")))
	api.GET("/ping", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"request_id": c.GetString("request_id")})
	})
	r.GET("/panic", func(*ginext.Context) {
		panic("boom")
	})
	return r
}

func TestOperatorAuth(t *testing.T) {
	r := newEngine(t)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusForbidden},
		{"wrong", "42", http.StatusForbidden},
		{"operator", "1000", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
			if tt.header != "" {
				req.Header.Set(OperatorHeader, tt.header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(OperatorHeader, "1000")
	r.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(OperatorHeader, "1000")
	req.Header.Set(RequestIDHeader, "req-1")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
	assert.Contains(t, w.Body.String(), "req-1")
}

func TestRecovery(t *testing.T) {
	r := newEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestRecovery_ExposesPanicToRequestLog(t *testing.T) {
	var gotErr, gotID string

	r := ginext.New("test")
	r.Use(RequestID(), func(c *ginext.Context) {
		c.Next()
		gotErr = c.GetString("error")
		gotID = c.GetString("request_id")
	}, Recovery(newTestLogger(t)))
	r.GET("/panic", func(*ginext.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "boom", gotErr)
	assert.Equal(t, "req-7", gotID)
}
