package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"mockmate/interview-prep/internal/models"
)

const (
	defaultScore      = 5
	maxFeedbackLen    = 500
	feedbackSeparator = "\n\n---\n\n"
	unableToEvaluate  = "Unable to evaluate this answer due to a processing error."
)

// AnswerScorer evaluates submitted answers against the interview's stored
// questions, one generation call per question, strictly in question order.
// A failed call degrades that question to a default score instead of aborting
// the batch, so scoring as a whole never fails.
type AnswerScorer interface {
	ScoreAnswers(ctx context.Context, interview *models.Interview, answers []string) (int, string)
}

type answerScorer struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewAnswerScorer(gemini GeminiService) AnswerScorer {
	return &answerScorer{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

// ScoreAnswers implements AnswerScorer. Missing trailing answers are treated
// as empty strings. Returns the rounded average score and the combined
// feedback blocks.
func (s *answerScorer) ScoreAnswers(ctx context.Context, interview *models.Interview, answers []string) (int, string) {
	totalScore := 0
	feedbacks := make([]string, 0, len(interview.Questions))

	for i, question := range interview.Questions {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}

		prompt := s.promptBuilder.BuildScoringPrompt(question, answer, interview.ResumeURL, interview.JdURL)

		text, err := s.gemini.GenerateText(ctx, prompt, 0.3)
		if err != nil {
			log.Printf("❌ Error evaluating question %d: %v", i+1, err)
			totalScore += defaultScore
			feedbacks = append(feedbacks, formatFeedbackBlock(i+1, question, defaultScore, unableToEvaluate))
			continue
		}

		eval := ParseEvaluation(text)
		totalScore += eval.Score
		feedbacks = append(feedbacks, formatFeedbackBlock(i+1, question, eval.Score, eval.Feedback))
	}

	avgScore := int(math.Round(float64(totalScore) / float64(len(interview.Questions))))
	return avgScore, strings.Join(feedbacks, feedbackSeparator)
}

func formatFeedbackBlock(n int, question string, score int, feedback string) string {
	return fmt.Sprintf("**Question %d:** %s\n**Score:** %d/10\n**Feedback:** %s", n, question, score, feedback)
}

// Evaluation is the structured result parsed from one scoring response.
type Evaluation struct {
	Score    int
	Feedback string
}

var (
	scoreRe         = regexp.MustCompile(`(?i)SCORE:\s*(\d{1,2})`)
	fallbackScoreRe = regexp.MustCompile(`\b([1-9]|10)\b`)
	feedbackRe      = regexp.MustCompile(`(?is)FEEDBACK:\s*(.+)`)
)

// ParseEvaluation extracts a score and feedback from raw model output. Pure,
// so it can be tested against fixed literal responses. The score is always
// clamped to [1,10]; feedback is always capped at 500 characters.
func ParseEvaluation(text string) Evaluation {
	score := defaultScore
	if m := scoreRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		score = clampScore(n)
	} else if m := fallbackScoreRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		score = clampScore(n)
	}

	feedback := text
	if m := feedbackRe.FindStringSubmatch(text); m != nil {
		feedback = strings.TrimSpace(m[1])
	}
	if len(feedback) > maxFeedbackLen {
		feedback = feedback[:maxFeedbackLen]
	}

	return Evaluation{Score: score, Feedback: feedback}
}

func clampScore(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}
