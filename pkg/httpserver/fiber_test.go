package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/pkg/logger"
)

func newTestServer(buf *bytes.Buffer) *fiber.App {
	app := InitFiberServer(Options{AppName: "test-app"}, logger.NewZapLogger("test-app", buf))

	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return errors.New("database password is hunter2")
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	return app
}

func decodeError(t *testing.T, resp *http.Response) ErrorResponse {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var e ErrorResponse
	require.NoError(t, json.Unmarshal(body, &e))
	return e
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	app := newTestServer(&bytes.Buffer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Page not found", decodeError(t, resp).Error)
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	var logs bytes.Buffer
	app := newTestServer(&logs)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal Server Error", decodeError(t, resp).Error)
	assert.Contains(t, logs.String(), "hunter2")
}

func TestErrorHandler_Panic(t *testing.T) {
	app := newTestServer(&bytes.Buffer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal Server Error", decodeError(t, resp).Error)
}

func TestErrorHandler_ClientErrorKeepsMessage(t *testing.T) {
	app := newTestServer(&bytes.Buffer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "short and stout", decodeError(t, resp).Error)
}

func TestRequestID_IsSet(t *testing.T) {
	app := newTestServer(&bytes.Buffer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, resp.Header.Get(fiber.HeaderXRequestID), 36)
}

func TestRequestLogger_LogsRequest(t *testing.T) {
	var logs bytes.Buffer
	app := newTestServer(&logs)

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)

	assert.Contains(t, logs.String(), `"msg":"http request"`)
	assert.Contains(t, logs.String(), `"path":"/ok"`)
}

func TestHealthcheck(t *testing.T) {
	app := newTestServer(&bytes.Buffer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/manage/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/manage/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
