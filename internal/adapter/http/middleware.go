package http

import (
	"fmt"
	"log/slog"
	"time"

	"resume-builder/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestID assigns an X-Request-ID and stores it in the user context for
// the slog handler.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: func() string { return uuid.New().String() },
	})
}

// withRequestContext copies the request id into the user context.
func withRequestContext(c *fiber.Ctx) error {
	id := c.GetRespHeader(fiber.HeaderXRequestID)
	c.SetUserContext(logger.WithRequestID(c.UserContext(), id))
	return c.Next()
}

// AccessLog logs one line per request with its status and duration.
func AccessLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	if err != nil {
		// let the error handler set the status before logging it
		if herr := c.App().ErrorHandler(c, err); herr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	status := c.Response().StatusCode()
	logAttrs := []any{
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	}

	ctx := c.UserContext()
	switch {
	case status >= 500:
		slog.ErrorContext(ctx, "Request failed with server error", logAttrs...)
	case status >= 400:
		slog.WarnContext(ctx, "Request failed with client error", logAttrs...)
	default:
		slog.InfoContext(ctx, "Request completed successfully", logAttrs...)
	}
	return nil
}

// Recover turns panics into 500 responses.
func Recover() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			slog.ErrorContext(c.UserContext(), "PANIC RECOVERED", "error", fmt.Sprint(e), "path", c.Path())
		},
	})
}

// NewApp returns a Fiber app with the middleware chain and h's routes.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "resume-builder",
		ErrorHandler:          ErrorHandler,
		BodyLimit:             5 << 20,
		DisableStartupMessage: true,
	})
	app.Use(RequestID(), withRequestContext, AccessLog, Recover())
	h.Register(app)
	return app
}
