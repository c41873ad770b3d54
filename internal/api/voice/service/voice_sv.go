package voiceService

import (
	"fmt"
	"strings"
	"time"

	"github.com/ISLASKRIGA/IMony3/internal/api/transaction"
	"github.com/ISLASKRIGA/IMony3/internal/api/voice"
	"github.com/ISLASKRIGA/IMony3/internal/entity"
	contextPkg "github.com/ISLASKRIGA/IMony3/pkg/context"
	"github.com/ISLASKRIGA/IMony3/pkg/nlp"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *voiceService) ProcessTranscript(ctx context.Context, req voice.TranscriptRequest) (voice.TranscriptResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(req.Transcript) == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Empty transcript received")
		return voice.TranscriptResponse{}, voice.ErrEmptyTranscript
	}

	registry, err := s.categoryService.GetRegistrySnapshot(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load category registry snapshot")
		return voice.TranscriptResponse{}, voice.ErrExtractionFailed
	}

	pipeline := nlp.NewPipeline(registry, s.now)
	drafts := pipeline.ExtractTransactions(req.Transcript)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"drafts":     len(drafts),
	}).Debug("Transcript extraction finished")

	if len(drafts) == 0 {
		return voice.TranscriptResponse{
			Message:      "No se detectaron transacciones",
			Date:         s.now().Format("2006-01-02"),
			Transactions: []transaction.TransactionResponse{},
		}, nil
	}

	res := voice.TranscriptResponse{
		Date:         drafts[0].Date.Format("2006-01-02"),
		Transactions: make([]transaction.TransactionResponse, 0, len(drafts)),
	}

	for _, draft := range drafts {
		saved, err := s.transactionService.CreateFromDraft(ctx, entity.Transaction{
			Type:        draft.Type,
			Amount:      draft.Amount,
			Description: draft.Description,
			CategoryID:  draft.CategoryID,
			Date:        draft.Date,
			Method:      draft.Method,
		})
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"description": draft.Description,
				"error":       err.Error(),
			}).Error("Failed to persist extracted transaction")
			return voice.TranscriptResponse{}, voice.ErrPersistExtraction
		}

		res.Transactions = append(res.Transactions, transaction.TransactionResponse{
			ID:          saved.ID,
			Type:        saved.Type,
			Amount:      saved.Amount,
			Description: saved.Description,
			CategoryID:  saved.CategoryID,
			Date:        saved.Date.Format("2006-01-02"),
			Method:      saved.Method,
			CreatedAt:   saved.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   saved.UpdatedAt.Format(time.RFC3339),
		})
	}

	if len(res.Transactions) == 1 {
		res.Message = "Se registró 1 transacción"
	} else {
		res.Message = fmt.Sprintf("Se registraron %d transacciones", len(res.Transactions))
	}

	return res, nil
}
