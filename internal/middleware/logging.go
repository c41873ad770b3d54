package middleware

import (
	"github.com/ISLASKRIGA/IMony3/pkg/log"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
)

func LoggerConfig() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID, ok := c.Locals("X-Request-ID").(string)
		if !ok || requestID == "" {
			requestID = "unknown"
		}

		c.Locals("request_id", requestID)

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()

		if err != nil && status == fiber.StatusInternalServerError {
			return err
		}

		logFields := log.Fields{
			"request_id":    requestID,
			"method":        c.Method(),
			"path":          c.Path(),
			"status":        status,
			"latency_ms":    latency.Milliseconds(),
			"ip":            c.IP(),
			"host":          c.Hostname(),
			"user_agent":    c.Get("User-Agent"),
			"referer":       c.Get("Referer"),
			"response_size": len(c.Response().Body()),
		}

		if c.Request().Body() != nil && len(c.Request().Body()) > 0 {
			logFields["request_body"] = sanitizeRequestBody(string(c.Request().Body()))
		}

		if status >= 500 {
			log.Error(logFields, "Server error")
		} else if status >= 400 {
			log.Warn(logFields, "Client error")
		} else {
			log.Info(logFields, "Success")
		}

		return err
	}
}

// transcriptLogLimit caps how much of a spoken transcript ends up in the
// request log. Transcripts are user speech and can run long.
const transcriptLogLimit = 120

func sanitizeRequestBody(body string) string {
	var jsonBody map[string]interface{}
	if err := json.Unmarshal([]byte(body), &jsonBody); err != nil {
		return "[non-JSON body]"
	}

	if transcript, ok := jsonBody["transcript"].(string); ok {
		runes := []rune(transcript)
		if len(runes) > transcriptLogLimit {
			jsonBody["transcript"] = string(runes[:transcriptLogLimit]) + "…"
		}
	}

	sanitized, err := json.Marshal(jsonBody)
	if err != nil {
		return "[sanitization-failed]"
	}

	return string(sanitized)
}
