package http

import (
	"errors"
	"log/slog"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/templates"
	apierrors "resume-builder/pkg/errors"
	"resume-builder/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// ErrorHandler renders every error returned by a handler as an ApiError.
func ErrorHandler(c *fiber.Ctx, err error) error {
	apiErr := toAPIError(err).WithRequestID(logger.GetRequestID(c.UserContext()))
	if apiErr.Code >= fiber.StatusInternalServerError {
		slog.ErrorContext(c.UserContext(), "request failed", "path", c.Path(), "error", err)
	}
	return c.Status(apiErr.Code).JSON(apiErr)
}

func toAPIError(err error) *apierrors.ApiError {
	var (
		apiErr   *apierrors.ApiError
		fiberErr *fiber.Error
		ve       *model.ValidationError
		re       *templates.RenderError
	)
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.As(err, &fiberErr):
		return apierrors.New(fiberErr.Code, utils.StatusMessage(fiberErr.Code), fiberErr.Message)
	case errors.As(err, &ve):
		return apierrors.ErrUnprocessableEntity("validation failed").WithFields(ve.Errors)
	case errors.Is(err, templates.ErrUnknownTemplate):
		return apierrors.ErrBadRequest(err.Error())
	case errors.As(err, &re):
		return apierrors.ErrBadRequest(err.Error())
	case errors.Is(err, domain.ErrJobNotFound):
		return apierrors.ErrNotFound(err.Error())
	}
	return apierrors.ErrInternalServer(err.Error())
}
