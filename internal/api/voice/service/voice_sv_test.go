package voiceService

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ISLASKRIGA/IMony3/internal/api/category"
	"github.com/ISLASKRIGA/IMony3/internal/api/transaction"
	"github.com/ISLASKRIGA/IMony3/internal/api/voice"
	"github.com/ISLASKRIGA/IMony3/internal/entity"
	"github.com/ISLASKRIGA/IMony3/pkg/nlp"
	"github.com/sirupsen/logrus"
)

type fakeCategoryService struct {
	registry []nlp.Category
}

func (f *fakeCategoryService) SeedDefaultCategories(ctx context.Context) error { return nil }

func (f *fakeCategoryService) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (entity.Category, error) {
	return entity.Category{}, nil
}

func (f *fakeCategoryService) GetCategories(ctx context.Context) ([]entity.Category, error) {
	return nil, nil
}

func (f *fakeCategoryService) ToggleCategory(ctx context.Context, id string) (entity.Category, error) {
	return entity.Category{}, nil
}

func (f *fakeCategoryService) GetRegistrySnapshot(ctx context.Context) ([]nlp.Category, error) {
	return f.registry, nil
}

type fakeTransactionService struct {
	created []entity.Transaction
	nextID  int
}

func (f *fakeTransactionService) CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) (entity.Transaction, error) {
	return entity.Transaction{}, nil
}

func (f *fakeTransactionService) CreateFromDraft(ctx context.Context, draft entity.Transaction) (entity.Transaction, error) {
	f.nextID++
	draft.ID = string(rune('a' + f.nextID))
	f.created = append(f.created, draft)
	return draft, nil
}

func (f *fakeTransactionService) GetTransactionByID(ctx context.Context, id string) (entity.Transaction, error) {
	return entity.Transaction{}, transaction.ErrTransactionNotFound
}

func (f *fakeTransactionService) GetTransactions(ctx context.Context, period string) (transaction.TransactionListResponse, error) {
	return transaction.TransactionListResponse{}, nil
}

func (f *fakeTransactionService) GetSummary(ctx context.Context, period string) (transaction.SummaryResponse, error) {
	return transaction.SummaryResponse{}, nil
}

func (f *fakeTransactionService) UpdateTransaction(ctx context.Context, id string, req transaction.UpdateTransactionRequest) error {
	return nil
}

func (f *fakeTransactionService) DeleteTransaction(ctx context.Context, id string) error {
	return nil
}

func newTestVoiceService(txs *fakeTransactionService) IVoiceService {
	registry := []nlp.Category{
		{ID: "comida", Name: "Comida", Selected: true, Priority: 1.2, Keywords: []string{"pizza", "mcflurry"}},
		{ID: "transporte", Name: "Transporte", Selected: true, Priority: 1.0, Keywords: []string{"gasolina", "taxi"}},
	}
	return NewVoiceService(logrus.New(), &fakeCategoryService{registry: registry}, txs)
}

func newTestVoiceServiceAt(txs *fakeTransactionService, now func() time.Time) IVoiceService {
	svc := newTestVoiceService(txs).(*voiceService)
	svc.now = now
	return svc
}

func TestProcessTranscript_PersistsExtractedDrafts(t *testing.T) {
	txs := &fakeTransactionService{}
	svc := newTestVoiceService(txs)

	res, err := svc.ProcessTranscript(context.Background(), voice.TranscriptRequest{
		Transcript: "gasté 50 en un mcflurry y 200 en gasolina",
	})
	if err != nil {
		t.Fatalf("ProcessTranscript: %v", err)
	}

	if len(txs.created) != 2 {
		t.Fatalf("persisted %d transactions, want 2: %+v", len(txs.created), txs.created)
	}
	if len(res.Transactions) != 2 {
		t.Fatalf("response carries %d transactions, want 2", len(res.Transactions))
	}
	if res.Message != "Se registraron 2 transacciones" {
		t.Errorf("message = %q", res.Message)
	}

	for _, tx := range txs.created {
		if tx.Method != "voice" {
			t.Errorf("persisted method = %q, want voice", tx.Method)
		}
		if tx.Amount <= 0 {
			t.Errorf("persisted non-positive amount: %+v", tx)
		}
	}
}

func TestProcessTranscript_NoTransactionsIsNotAnError(t *testing.T) {
	txs := &fakeTransactionService{}
	svc := newTestVoiceService(txs)

	res, err := svc.ProcessTranscript(context.Background(), voice.TranscriptRequest{
		Transcript: "hola buenos días",
	})
	if err != nil {
		t.Fatalf("ProcessTranscript: %v", err)
	}

	if len(txs.created) != 0 {
		t.Errorf("persisted %d transactions, want 0", len(txs.created))
	}
	if res.Message != "No se detectaron transacciones" {
		t.Errorf("message = %q", res.Message)
	}
}

func TestProcessTranscript_DatesFollowInjectedClock(t *testing.T) {
	clock := func() time.Time {
		return time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	}

	txs := &fakeTransactionService{}
	svc := newTestVoiceServiceAt(txs, clock)

	res, err := svc.ProcessTranscript(context.Background(), voice.TranscriptRequest{
		Transcript: "ayer gasté 100 en pizza y 80 en taxi",
	})
	if err != nil {
		t.Fatalf("ProcessTranscript: %v", err)
	}

	if res.Date != "2025-03-14" {
		t.Errorf("response date = %q, want 2025-03-14", res.Date)
	}
	for _, tx := range txs.created {
		if got := tx.Date.Format("2006-01-02"); got != "2025-03-14" {
			t.Errorf("persisted date = %q, want 2025-03-14", got)
		}
	}

	// The empty result stamps today from the same clock, not the wall clock.
	res, err = svc.ProcessTranscript(context.Background(), voice.TranscriptRequest{
		Transcript: "hola buenos días",
	})
	if err != nil {
		t.Fatalf("ProcessTranscript: %v", err)
	}
	if res.Date != "2025-03-15" {
		t.Errorf("empty-result date = %q, want 2025-03-15", res.Date)
	}
}

func TestProcessTranscript_BlankTranscript(t *testing.T) {
	svc := newTestVoiceService(&fakeTransactionService{})

	_, err := svc.ProcessTranscript(context.Background(), voice.TranscriptRequest{Transcript: "   "})
	if !errors.Is(err, voice.ErrEmptyTranscript) {
		t.Fatalf("err = %v, want %v", err, voice.ErrEmptyTranscript)
	}
}
