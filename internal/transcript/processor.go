// Package transcript parses raw interview call transcripts into ordered
// question/answer segments. Parsing is pure and runs in a single pass over
// the input lines.
package transcript

import (
	"strings"

	"interview-byte/internal/domain"
)

var interviewerTags = map[string]bool{
	"ASSISTANT":   true,
	"INTERVIEWER": true,
	"AI":          true,
	"BOT":         true,
}

var candidateTags = map[string]bool{
	"USER":      true,
	"CANDIDATE": true,
	"HUMAN":     true,
}

// Result is the outcome of parsing one raw transcript.
type Result struct {
	Segments []domain.QASegment
	// ConfidenceScore is the fraction of interviewer questions that received
	// an answer, in [0, 1].
	ConfidenceScore float64
}

// Parse splits raw transcript text into question/answer segments. Each line is
// expected to carry a speaker tag prefix ("ASSISTANT: ..." / "USER: ...").
// A question whose answer never arrives is dropped, including a trailing
// question at the end of the call.
func Parse(rawText string) Result {
	var segments []domain.QASegment
	var pending *domain.QASegment
	questionsSeen := 0

	for _, line := range strings.Split(rawText, "\n") {
		tag, content := splitSpeakerLine(line)
		switch {
		case interviewerTags[tag]:
			if pending != nil && strings.TrimSpace(pending.AnswerText) != "" {
				segments = append(segments, *pending)
			}
			pending = &domain.QASegment{QuestionText: content}
			questionsSeen++
		case candidateTags[tag]:
			if pending == nil {
				// Candidate speech before any question carries no pairing; skip it.
				continue
			}
			if pending.AnswerText == "" {
				pending.AnswerText = content
			} else {
				pending.AnswerText += " " + content
			}
		}
	}

	if pending != nil && strings.TrimSpace(pending.AnswerText) != "" {
		segments = append(segments, *pending)
	}

	confidence := 0.0
	if questionsSeen > 0 {
		confidence = float64(len(segments)) / float64(questionsSeen)
	}

	return Result{Segments: segments, ConfidenceScore: confidence}
}

// splitSpeakerLine splits "TAG: content" into an upper-cased tag and trimmed
// content. Lines without a tag return an empty tag.
func splitSpeakerLine(line string) (string, string) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", strings.TrimSpace(line)
	}
	tag := strings.ToUpper(strings.TrimSpace(line[:idx]))
	content := strings.TrimSpace(line[idx+1:])
	return tag, content
}
