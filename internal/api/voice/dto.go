package voice

import "github.com/ISLASKRIGA/IMony3/internal/api/transaction"

type TranscriptRequest struct {
	Transcript string `json:"transcript" validate:"required,min=1"`
}

type TranscriptResponse struct {
	Message      string                            `json:"message"`
	Date         string                            `json:"date"`
	Transactions []transaction.TransactionResponse `json:"transactions"`
}
