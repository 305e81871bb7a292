package handlers

import (
	"net/url"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/spec-kit/palindrome-service/internal/api/dto"
	"github.com/spec-kit/palindrome-service/internal/observability"
	"github.com/spec-kit/palindrome-service/internal/service"
	apperrors "github.com/spec-kit/palindrome-service/pkg/util/errorutil"
)

// PalindromeHandler serves the palindrome check endpoints.
type PalindromeHandler struct {
	service       *service.PalindromeService
	metrics       *observability.Metrics
	maxInputBytes int
}

// NewPalindromeHandler constructs handler. maxInputBytes <= 0 disables the length check.
func NewPalindromeHandler(svc *service.PalindromeService, metrics *observability.Metrics, maxInputBytes int) *PalindromeHandler {
	return &PalindromeHandler{service: svc, metrics: metrics, maxInputBytes: maxInputBytes}
}

// CountedCheck GET /palindrome/counter/check/:input.
func (h *PalindromeHandler) CountedCheck(c *fiber.Ctx) error {
	input, err := h.input(c)
	if err != nil {
		return err
	}
	return c.JSON(h.service.CountedCheck(input))
}

// TimedCheck GET /palindrome/timer/check/:input.
func (h *PalindromeHandler) TimedCheck(c *fiber.Ctx) error {
	input, err := h.input(c)
	if err != nil {
		return err
	}
	return c.JSON(h.service.TimedCheck(input))
}

// EmptyList DELETE /palindrome/empty-list.
func (h *PalindromeHandler) EmptyList(c *fiber.Ctx) error {
	h.service.ClearLog()
	return c.SendStatus(fiber.StatusNoContent)
}

// Metrics GET /palindrome/metrics.
func (h *PalindromeHandler) Metrics(c *fiber.Ctx) error {
	snap, err := h.metrics.Snapshot()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.JSON(dto.NewPalindromeMetricsResponse(snap))
}

func (h *PalindromeHandler) input(c *fiber.Ctx) (string, error) {
	// params alias the request buffer; the log outlives the request
	raw := utils.CopyString(c.Params("input"))
	input, err := url.PathUnescape(raw)
	if err != nil {
		return "", apperrors.NewValidationError("input is not a valid path segment", nil)
	}
	if !utf8.ValidString(input) {
		return "", apperrors.NewValidationError("input is not valid UTF-8", nil)
	}
	if h.maxInputBytes > 0 && len(input) > h.maxInputBytes {
		return "", apperrors.NewValidationError("input too long", map[string]any{
			"max_bytes": h.maxInputBytes,
		})
	}
	return input, nil
}
