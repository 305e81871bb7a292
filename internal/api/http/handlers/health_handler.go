package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	logSize     func() int
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, logSize func() int) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, logSize: logSize}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness. The service has no external dependencies, so it is
// ready as soon as it serves requests; the request log size is included for
// operators.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	details := fiber.Map{}
	if h.logSize != nil {
		details["request_log_size"] = h.logSize()
	}
	return c.JSON(fiber.Map{
		"status":  "ready",
		"details": details,
	})
}
