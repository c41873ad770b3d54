package nlp

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Pipeline converts one Spanish transcript into transaction drafts. It holds
// a read-only registry snapshot and an injected time source, carries no other
// state and does no I/O, so concurrent calls are safe as long as the snapshot
// is not mutated mid-call.
type Pipeline struct {
	registry []Category
	now      func() time.Time
}

func NewPipeline(registry []Category, now func() time.Time) *Pipeline {
	if now == nil {
		now = time.Now
	}
	return &Pipeline{registry: registry, now: now}
}

// ExtractTransactions runs the full pipeline: resolve the date once, classify
// polarity once over the whole utterance, then extract one draft per segment.
// When no segment yields a draft, the extractor runs once more over the whole
// clean text. An empty result is a valid outcome, never an error.
func (p *Pipeline) ExtractTransactions(transcript string) []Draft {
	date, cleanText := ResolveDate(transcript, p.now())
	lowerText := strings.ToLower(cleanText)

	var drafts []Draft
	for _, segment := range SegmentTranscript(cleanText) {
		segment = strings.TrimSpace(segment)
		if utf8.RuneCountInString(segment) < 3 {
			continue
		}

		if draft := ExtractSegment(segment, lowerText, date, p.registry); draft != nil {
			drafts = append(drafts, *draft)
		}
	}

	if len(drafts) == 0 {
		if draft := ExtractSegment(strings.TrimSpace(cleanText), lowerText, date, p.registry); draft != nil {
			drafts = append(drafts, *draft)
		}
	}

	return drafts
}
