package voiceHandler

import (
	"time"

	"github.com/ISLASKRIGA/IMony3/internal/api/voice"
	contextPkg "github.com/ISLASKRIGA/IMony3/pkg/context"
	"github.com/ISLASKRIGA/IMony3/pkg/handlerUtil"
	"github.com/ISLASKRIGA/IMony3/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *VoiceHandler) ProcessTranscript(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing voice transcript request")

	var req voice.TranscriptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.voiceService.ProcessTranscript(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "process_transcript")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
