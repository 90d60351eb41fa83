package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/gamey-gateway/internal/logger"
)

// makeRequest creates a test request whose context carries a logger that
// writes to buf, the same way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func nopHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "register 200",
			method:          http.MethodPost,
			path:            "/createuser",
			handlerStatus:   http.StatusOK,
			handlerResponse: `{"message":"ok"}`,
			checkLogContains: []string{
				`"method":"POST"`,
				`"uri":"/createuser"`,
				`"status":200`,
				`"duration":`,
				`"size":16`,
			},
		},
		{
			name:            "login 401",
			method:          http.MethodPost,
			path:            "/login",
			handlerStatus:   http.StatusUnauthorized,
			handlerResponse: `{"error":"x"}`,
			checkLogContains: []string{
				`"uri":"/login"`,
				`"status":401`,
			},
		},
		{
			name:            "move 500",
			method:          http.MethodPost,
			path:            "/move",
			handlerStatus:   http.StatusInternalServerError,
			handlerResponse: `{"error":"Internal server error"}`,
			checkLogContains: []string{
				`"status":500`,
			},
		},
		{
			name:          "no body",
			method:        http.MethodGet,
			path:          "/status",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"method":"GET"`,
				`"status":204`,
				`"size":0`,
			},
		},
		{
			name:            "query parameters preserved in uri",
			method:          http.MethodGet,
			path:            "/status?verbose=1",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"uri":"/status?verbose=1"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			req := makeRequest(tt.method, tt.path, &logBuf)
			rr := httptest.NewRecorder()
			nopHandler().withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)

			logOutput := logBuf.String()
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logOutput, expected)
			}
		})
	}
}

func TestWithLogging_ResponseSize(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
	})

	req := makeRequest(http.MethodGet, "/status", &logBuf)
	nopHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, logBuf.String(), `"size":1024`)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_SecondWriteHeaderIgnored(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.WriteHeader(http.StatusGatewayTimeout)
	})

	req := makeRequest(http.MethodPost, "/reset", &logBuf)
	rr := httptest.NewRecorder()
	nopHandler().withLogging(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_DurationAccuracy(t *testing.T) {
	delay := 30 * time.Millisecond
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delay)
		w.WriteHeader(http.StatusOK)
	})

	req := makeRequest(http.MethodGet, "/slow", &logBuf)

	start := time.Now()
	nopHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.GreaterOrEqual(t, time.Since(start), delay)
	assert.Contains(t, logBuf.String(), `"duration":`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	req := makeRequest(http.MethodGet, "/panic", &logBuf)

	assert.Panics(t, func() {
		nopHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), req)
	}, "withLogging should not recover panics")
}

func TestWithLogging_NoLoggerInContext(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		nopHandler().withLogging(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nop", nil))
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}
