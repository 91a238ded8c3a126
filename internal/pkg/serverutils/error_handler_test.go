package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	module  string
	message string
	details map[string]interface{}
}

func (l *recordingLogger) Debug(string, string, map[string]interface{}) {}
func (l *recordingLogger) Info(string, string, map[string]interface{})  {}
func (l *recordingLogger) Warn(string, string, map[string]interface{})  {}
func (l *recordingLogger) Error(module, message string, details map[string]interface{}) {
	l.module = module
	l.message = message
	l.details = details
}
func (l *recordingLogger) Sync() error { return nil }

func newErrorApp(log *recordingLogger) *fiber.App {
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(ErrorHandlerMiddleware(log))
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("vector backend unreachable")
	})
	app.Get("/missing", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "faq not found")
	})
	return app
}

func TestErrorHandlerCorrelatesWithLog(t *testing.T) {
	log := &recordingLogger{}
	app := newErrorApp(log)

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body APIError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	// The caller gets the stable message plus an opaque id, never the
	// underlying error text.
	assert.False(t, body.Success)
	assert.Equal(t, "Internal server error", body.Message)
	require.NotEmpty(t, body.RequestId)
	assert.Equal(t, resp.Header.Get(fiber.HeaderXRequestID), body.RequestId)

	// The real error lands in the operational log under the same id.
	assert.Equal(t, "http", log.module)
	assert.Equal(t, body.RequestId, log.details["request_id"])
	assert.Equal(t, "vector backend unreachable", log.details["error"])
}

func TestErrorHandlerKeepsFiberErrorStatus(t *testing.T) {
	log := &recordingLogger{}
	app := newErrorApp(log)

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body APIError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 404, body.Code)
	assert.Equal(t, "faq not found", body.Message)
	assert.NotEmpty(t, body.RequestId)
}

func TestErrorHandlerEchoesProvidedRequestId(t *testing.T) {
	log := &recordingLogger{}
	app := newErrorApp(log)

	req := httptest.NewRequest("GET", "/boom", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-originale-42")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var body APIError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "req-originale-42", body.RequestId)
	assert.Equal(t, "req-originale-42", log.details["request_id"])
}
