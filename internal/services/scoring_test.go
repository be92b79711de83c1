package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mockmate/interview-prep/internal/models"
)

func TestParseEvaluation(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantScore    int
		wantFeedback string
	}{
		{
			name:         "well formed response",
			text:         "SCORE: 8\nFEEDBACK: Strong answer with a concrete example.",
			wantScore:    8,
			wantFeedback: "Strong answer with a concrete example.",
		},
		{
			name:         "lowercase labels",
			text:         "score: 6\nfeedback: Covers the basics but misses trade-offs.",
			wantScore:    6,
			wantFeedback: "Covers the basics but misses trade-offs.",
		},
		{
			name:         "multiline feedback",
			text:         "SCORE: 9\nFEEDBACK: Excellent depth.\nClear structure throughout.",
			wantScore:    9,
			wantFeedback: "Excellent depth.\nClear structure throughout.",
		},
		{
			name:         "score above ten clamped",
			text:         "SCORE: 11\nFEEDBACK: Outstanding.",
			wantScore:    10,
			wantFeedback: "Outstanding.",
		},
		{
			name:         "score zero clamped",
			text:         "SCORE: 0\nFEEDBACK: No answer provided.",
			wantScore:    1,
			wantFeedback: "No answer provided.",
		},
		{
			name:         "free text score fallback",
			text:         "I would rate this answer a 7 because it shows solid reasoning.",
			wantScore:    7,
			wantFeedback: "I would rate this answer a 7 because it shows solid reasoning.",
		},
		{
			name:         "no score anywhere",
			text:         "The answer shows some awareness of the topic.",
			wantScore:    defaultScore,
			wantFeedback: "The answer shows some awareness of the topic.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseEvaluation(tt.text)
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Feedback != tt.wantFeedback {
				t.Errorf("Feedback = %q, want %q", got.Feedback, tt.wantFeedback)
			}
		})
	}
}

func TestParseEvaluationTruncatesLongFeedback(t *testing.T) {
	long := strings.Repeat("a", 600)
	got := ParseEvaluation("SCORE: 7\nFEEDBACK: " + long)

	if len(got.Feedback) != maxFeedbackLen {
		t.Errorf("feedback length = %d, want %d", len(got.Feedback), maxFeedbackLen)
	}
}

func scoringInterview(questions ...string) *models.Interview {
	return &models.Interview{
		ResumeURL: "https://cdn.example.com/resume.pdf",
		JdURL:     "https://cdn.example.com/jd.pdf",
		Questions: questions,
	}
}

func TestScoreAnswersAveragesAndJoins(t *testing.T) {
	gemini := &fakeGemini{responses: []string{
		"SCORE: 8\nFEEDBACK: Good use of examples.",
		"SCORE: 6\nFEEDBACK: Somewhat shallow.",
		"SCORE: 7\nFEEDBACK: Reasonable structure.",
	}}
	scorer := NewAnswerScorer(gemini)
	interview := scoringInterview(
		"How would you design a rate limiter for a public API?",
		"What trade-offs did you consider when picking PostgreSQL?",
		"How do you monitor latency regressions after a deployment?",
	)

	score, feedback := scorer.ScoreAnswers(context.Background(), interview, []string{"a1", "a2", "a3"})

	if score != 7 {
		t.Errorf("score = %d, want 7", score)
	}
	blocks := strings.Split(feedback, feedbackSeparator)
	if len(blocks) != 3 {
		t.Fatalf("got %d feedback blocks, want 3", len(blocks))
	}
	if !strings.HasPrefix(blocks[0], "**Question 1:** How would you design a rate limiter") {
		t.Errorf("unexpected first block: %q", blocks[0])
	}
	if !strings.Contains(blocks[1], "**Score:** 6/10") {
		t.Errorf("second block missing score: %q", blocks[1])
	}
	if !strings.Contains(blocks[2], "Reasonable structure.") {
		t.Errorf("third block missing feedback: %q", blocks[2])
	}
}

func TestScoreAnswersRoundsAverage(t *testing.T) {
	gemini := &fakeGemini{responses: []string{
		"SCORE: 5\nFEEDBACK: ok",
		"SCORE: 6\nFEEDBACK: ok",
	}}
	scorer := NewAnswerScorer(gemini)
	interview := scoringInterview("question one text here", "question two text here")

	score, _ := scorer.ScoreAnswers(context.Background(), interview, []string{"a", "b"})

	// 5.5 rounds up.
	if score != 6 {
		t.Errorf("score = %d, want 6", score)
	}
}

func TestScoreAnswersIsolatesFailedEvaluations(t *testing.T) {
	gemini := &fakeGemini{
		responses: []string{
			"SCORE: 9\nFEEDBACK: Great.",
			"",
			"SCORE: 7\nFEEDBACK: Fine.",
		},
		errs: []error{nil, errors.New("deadline exceeded"), nil},
	}
	scorer := NewAnswerScorer(gemini)
	interview := scoringInterview("first question", "second question", "third question")

	score, feedback := scorer.ScoreAnswers(context.Background(), interview, []string{"a", "b", "c"})

	// (9 + 5 + 7) / 3 = 7
	if score != 7 {
		t.Errorf("score = %d, want 7", score)
	}
	if !strings.Contains(feedback, unableToEvaluate) {
		t.Errorf("feedback missing failure placeholder: %q", feedback)
	}
	if !strings.Contains(feedback, "Great.") || !strings.Contains(feedback, "Fine.") {
		t.Errorf("successful evaluations lost: %q", feedback)
	}
}

func TestScoreAnswersPadsMissingAnswers(t *testing.T) {
	gemini := &fakeGemini{responses: []string{"SCORE: 5\nFEEDBACK: ok"}}
	scorer := NewAnswerScorer(gemini)
	interview := scoringInterview("first question", "second question", "third question")

	scorer.ScoreAnswers(context.Background(), interview, []string{"only answer"})

	if len(gemini.prompts) != 3 {
		t.Fatalf("expected one Gemini call per question, got %d", len(gemini.prompts))
	}
	if !strings.Contains(gemini.prompts[0], "only answer") {
		t.Errorf("first prompt missing the answer: %q", gemini.prompts[0])
	}
	// Unanswered questions are still evaluated, with an empty answer.
	if strings.Contains(gemini.prompts[2], "only answer") {
		t.Errorf("third prompt should not contain the first answer: %q", gemini.prompts[2])
	}
}

func TestScoreAnswersStaysInRange(t *testing.T) {
	gemini := &fakeGemini{responses: []string{"SCORE: 10\nFEEDBACK: Perfect."}}
	scorer := NewAnswerScorer(gemini)
	interview := scoringInterview("first question", "second question")

	score, _ := scorer.ScoreAnswers(context.Background(), interview, []string{"a", "b"})

	if score < 1 || score > 10 {
		t.Errorf("score %d out of range", score)
	}
}
