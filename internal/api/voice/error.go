package voice

import "github.com/ISLASKRIGA/IMony3/pkg/response"

var (
	ErrEmptyTranscript   = response.NewError(400, "transcript is empty")
	ErrExtractionFailed  = response.NewError(500, "failed to extract transactions from transcript")
	ErrPersistExtraction = response.NewError(500, "failed to persist extracted transactions")
)
