package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debug(format string, args ...any) {}
func (l *recordingLogger) Info(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Warn(format string, args ...any)  {}
func (l *recordingLogger) Error(format string, args ...any) {}

func TestAccessLog(t *testing.T) {
	log := &recordingLogger{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	AccessLog(log)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles/foo", nil))

	assert.Len(t, log.lines, 1)
	assert.Contains(t, log.lines[0], "GET /articles/foo 418")
}

func TestAccessLogDefaultsToOK(t *testing.T) {
	log := &recordingLogger{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	AccessLog(log)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, log.lines, 1)
	assert.Contains(t, log.lines[0], " 200 ")
}
