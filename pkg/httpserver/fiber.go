package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"weather-dashboard/pkg/logger"
)

const (
	MsgPageNotFound     = "Page not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgInternalError    = "Internal Server Error"

	bodyLimit = 1 * 1024 * 1024
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Location parameter is required"`
}

type Options struct {
	AppName      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

func InitFiberServer(opts Options, l *logger.Logger) *fiber.App {
	s := fiber.New(fiber.Config{
		AppName:               opts.AppName,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		BodyLimit:             bodyLimit,
		ReadTimeout:           opts.ReadTimeout,
		WriteTimeout:          opts.WriteTimeout,
		IdleTimeout:           opts.IdleTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler(l),
	})

	s.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	s.Use(RequestLogger(l))
	s.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			l.Error(fmt.Errorf("panic: %v", e), map[string]any{
				"method":     c.Method(),
				"path":       c.Path(),
				"request_id": RequestID(c),
			})
		},
	}))
	s.Use(cors.New())
	s.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint:  "/manage/health",
		ReadinessEndpoint: "/manage/ready",
	}))

	return s
}

// ErrorHandler renders every error that reaches the app boundary as a JSON
// ErrorResponse. Unexpected errors are logged and replaced by a generic message.
func ErrorHandler(l *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch {
			case fe.Code == fiber.StatusNotFound:
				return c.Status(fe.Code).JSON(ErrorResponse{Error: MsgPageNotFound})
			case fe.Code == fiber.StatusMethodNotAllowed:
				return c.Status(fe.Code).JSON(ErrorResponse{Error: MsgMethodNotAllowed})
			case fe.Code < fiber.StatusInternalServerError:
				return c.Status(fe.Code).JSON(ErrorResponse{Error: fe.Message})
			}
		}

		l.Error(err, map[string]any{
			"method":     c.Method(),
			"path":       c.Path(),
			"request_id": RequestID(c),
		})

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: MsgInternalError})
	}
}

// RequestLogger logs one line per request once the handler chain returns.
func RequestLogger(l *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		l.Info("http request", map[string]any{
			"method":      c.Method(),
			"path":        c.Path(),
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  RequestID(c),
		})

		return err
	}
}

func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
