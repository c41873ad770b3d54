package nlp

import "regexp"

// itemSeparators split an utterance into single-item candidates. They are
// applied in order, each one splitting the output of the previous, so an
// utterance containing both "y" and a comma is split by both.
var itemSeparators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s+y\s+(?:un|una|el|la|los|las)?\s*`),
	regexp.MustCompile(`(?i)\s+también\s+`),
	regexp.MustCompile(`(?i)\s+además\s+`),
	regexp.MustCompile(`(?i),\s*(?:y\s+)?`),
}

// SegmentTranscript returns the full split; dropping too-short segments is the
// caller's job.
func SegmentTranscript(text string) []string {
	segments := []string{text}

	for _, sep := range itemSeparators {
		next := make([]string, 0, len(segments))
		for _, segment := range segments {
			next = append(next, sep.Split(segment, -1)...)
		}
		segments = next
	}

	return segments
}
