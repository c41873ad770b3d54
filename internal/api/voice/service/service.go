package voiceService

import (
	"time"

	categoryService "github.com/ISLASKRIGA/IMony3/internal/api/category/service"
	transactionService "github.com/ISLASKRIGA/IMony3/internal/api/transaction/service"
	"github.com/ISLASKRIGA/IMony3/internal/api/voice"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IVoiceService interface {
	ProcessTranscript(ctx context.Context, req voice.TranscriptRequest) (voice.TranscriptResponse, error)
}

type voiceService struct {
	log                *logrus.Logger
	categoryService    categoryService.ICategoryService
	transactionService transactionService.ITransactionService
	now                func() time.Time
}

func NewVoiceService(
	log *logrus.Logger,
	cs categoryService.ICategoryService,
	ts transactionService.ITransactionService,
) IVoiceService {
	return &voiceService{
		log:                log,
		categoryService:    cs,
		transactionService: ts,
		now:                time.Now,
	}
}
