package fiber_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/logger"
	adapter "github.com/GoPowerDNS-Admin/GoAuth-API/internal/logger/adapter/fiber"
)

var errShortAndStout = errors.New("short and stout")

// expectedLoggerJSONFormat implements loggers default json format.
type expectedLoggerJSONFormat struct {
	Status    int    `json:"status"`
	URI       string `json:"URI"`
	Method    string `json:"method"`
	Host      string `json:"host"`
	ErrorCode string `json:"errorCode"`
	Error     string `json:"error"`
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		targetPath string
		want       expectedLoggerJSONFormat
	}{
		{
			name:       "get /",
			targetPath: "/",
			want:       expectedLoggerJSONFormat{Status: 200, URI: "/", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:       "get with params",
			targetPath: "/?test=123",
			want:       expectedLoggerJSONFormat{Status: 200, URI: "/?test=123", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:       "unknown route uses error handler status",
			targetPath: "/no_path",
			want:       expectedLoggerJSONFormat{Status: 404, URI: "/no_path", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:       "failing route carries error code",
			targetPath: "/teapot",
			want: expectedLoggerJSONFormat{
				Status:    fiber.StatusTeapot,
				URI:       "/teapot",
				Method:    fiber.MethodGet,
				Host:      "example.com",
				ErrorCode: "TEAPOT",
				Error:     "short and stout",
			},
		},
		{
			name:       "checkalive is not logged",
			targetPath: "/checkalive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := testMiddlewareHelper(t, tt.targetPath)

			if tt.want.URI == "" {
				assert.Empty(t, output)
				return
			}

			var decoded expectedLoggerJSONFormat
			require.NoError(t, json.Unmarshal([]byte(output), &decoded))

			assert.Equal(t, tt.want.Status, decoded.Status)
			assert.Equal(t, tt.want.URI, decoded.URI)
			assert.Equal(t, tt.want.Method, decoded.Method)
			assert.Equal(t, tt.want.Host, decoded.Host)
			assert.Equal(t, tt.want.ErrorCode, decoded.ErrorCode)

			if tt.want.Error != "" {
				assert.Equal(t, tt.want.Error, decoded.Error)
			}
		})
	}
}

func testMiddlewareHelper(t *testing.T, targetPath string) string {
	t.Helper()

	var out bytes.Buffer

	errorHandler := func(c fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).SendString(fe.Message)
		}

		c.Locals(adapter.LocalErrorCode, "TEAPOT")

		return c.Status(fiber.StatusTeapot).SendString(err.Error())
	}

	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		Immutable:     true,
	})

	app.Use(adapter.New(adapter.Config{
		Config:        logger.Log{DisableCheckAlive: true},
		ErrorHandler:  errorHandler,
		Output:        &out,
		CheckAliveURI: "/checkalive",
	}))

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("hello test")
	})

	app.Get("/teapot", func(_ fiber.Ctx) error {
		return errShortAndStout
	})

	app.Get("/checkalive", func(c fiber.Ctx) error {
		return c.SendString("OK")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, targetPath, nil))
	require.NoError(t, err)

	_ = resp.Body.Close()

	return out.String()
}
