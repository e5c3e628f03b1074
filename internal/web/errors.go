package web

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/failure"
	fiberlogger "github.com/GoPowerDNS-Admin/GoAuth-API/internal/logger/adapter/fiber"
)

const (
	// MsgNotFound is the message of requests to unknown routes.
	MsgNotFound = "Resource not found"

	// CodeNotFound is the error code of requests to unknown routes.
	CodeNotFound failure.Code = "NOT_FOUND"
)

var failuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "api_failures_total",
	Help: "Number of failed API requests per error code.",
}, []string{"error_code"})

// errorHandler is the only place failures are turned into responses.
func (s *Service) errorHandler(c fiber.Ctx, err error) error {
	status, envelope := s.classifier.Classify(fromFiber(err))

	c.Locals(fiberlogger.LocalErrorCode, string(envelope.ErrorCode))
	failuresTotal.WithLabelValues(string(envelope.ErrorCode)).Inc()

	return c.Status(status).JSON(envelope)
}

// notFound ends every request no route matched.
func notFound(_ fiber.Ctx) error {
	return failure.Business(MsgNotFound, fiber.StatusNotFound, CodeNotFound)
}

// fromFiber turns errors fiber raises itself, like an oversized body, into
// business failures with their status.
func fromFiber(err error) error {
	var (
		fe     *fiber.Error
		tagged *failure.Error
	)

	if !errors.As(err, &fe) || errors.As(err, &tagged) {
		return err
	}

	if fe.Code >= fiber.StatusInternalServerError {
		return err
	}

	return failure.Business(fe.Message, fe.Code, codeOf(fe.Code))
}

func codeOf(status int) failure.Code {
	text := http.StatusText(status)
	if text == "" {
		return failure.CodeBusiness
	}

	return failure.Code(strings.ToUpper(strings.ReplaceAll(text, " ", "_")))
}
