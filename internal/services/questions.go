package services

import (
	"context"
	"log"
	"regexp"
	"strings"
)

// QuestionGenerator produces exactly five interview questions from résumé and
// job-description text. It never fails: every error path degrades to a fixed
// fallback question set, trading correctness for availability.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, resumeText, jdText string) []string
}

type questionGenerator struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewQuestionGenerator(gemini GeminiService) QuestionGenerator {
	return &questionGenerator{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

const questionCount = 5

// genericQuestions pads a partial parse up to five questions.
var genericQuestions = []string{
	"Tell me about a challenging project you worked on recently.",
	"How do you stay updated with the latest technologies in your field?",
	"Describe a time when you had to debug a complex issue.",
	"What is your approach to code reviews and collaboration?",
	"Where do you see yourself growing in this role?",
}

// fallbackQuestions replaces the whole set when generation or parsing fails.
var fallbackQuestions = []string{
	"Describe your most recent project and the technologies you used.",
	"What challenges did you face in your last role and how did you overcome them?",
	"How do you approach solving complex technical problems?",
	"What technologies or frameworks are you most confident with and why?",
	"Why do you think you are a good fit for this role based on your experience?",
}

// GenerateQuestions implements QuestionGenerator.
func (g *questionGenerator) GenerateQuestions(ctx context.Context, resumeText, jdText string) []string {
	prompt := g.promptBuilder.BuildQuestionPrompt(resumeText, jdText)

	text, err := g.gemini.GenerateText(ctx, prompt, 0.7)
	if err != nil {
		log.Printf("❌ Error generating questions with Gemini: %v", err)
		return append([]string(nil), fallbackQuestions...)
	}

	questions := ParseQuestions(text)

	if len(questions) >= questionCount {
		return questions[:questionCount]
	}

	if len(questions) > 0 {
		needed := questionCount - len(questions)
		return append(questions, genericQuestions[:needed]...)
	}

	log.Println("⚠️ Failed to parse questions, using fallback")
	return append([]string(nil), fallbackQuestions...)
}

var (
	numberingRe  = regexp.MustCompile(`^\d+[.)]\s*`)
	questionNoRe = regexp.MustCompile(`(?i)^question\s*\d+[:.)]\s*`)
	boldNumRe    = regexp.MustCompile(`^\*\*\d+[.)]\s*`)
	bulletRe     = regexp.MustCompile(`^[-•]\s*`)
)

// ParseQuestions extracts candidate questions from raw model output. It is a
// pure function so the brittle free-text handling can be tested against fixed
// literal responses.
func ParseQuestions(text string) []string {
	var questions []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Preamble lines the model emits despite the prompt contract.
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "here are") ||
			strings.HasPrefix(lower, "interview questions") ||
			strings.Contains(lower, "relevant technical interview") ||
			strings.Contains(lower, "based on the") ||
			strings.HasPrefix(line, "**") ||
			len(line) <= 15 {
			continue
		}

		// Strip numbering, bullets and markdown emphasis.
		line = numberingRe.ReplaceAllString(line, "")
		line = questionNoRe.ReplaceAllString(line, "")
		line = boldNumRe.ReplaceAllString(line, "")
		line = strings.TrimPrefix(line, "**")
		line = strings.TrimSuffix(line, "**")
		line = bulletRe.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)

		// Must still look like a question.
		if len(line) > 20 &&
			(strings.HasSuffix(line, "?") ||
				strings.Contains(line, "describe") ||
				strings.Contains(line, "explain")) {
			questions = append(questions, line)
		}
	}

	return questions
}
