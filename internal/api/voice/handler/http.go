package voiceHandler

import (
	voiceService "github.com/ISLASKRIGA/IMony3/internal/api/voice/service"
	"github.com/ISLASKRIGA/IMony3/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type VoiceHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	voiceService voiceService.IVoiceService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	voiceService voiceService.IVoiceService,
) *VoiceHandler {
	return &VoiceHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		voiceService: voiceService,
	}
}

func (h *VoiceHandler) Start(srv fiber.Router) {
	voice := srv.Group("/voice")

	voice.Post("/transcript", h.middleware.NewRateLimiter, h.ProcessTranscript)
}
