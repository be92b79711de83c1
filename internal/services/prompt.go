package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionPrompt creates the prompt for interview question generation.
// The output contract (exactly five numbered lines, no preamble) is what the
// parser in questions.go relies on.
func (pb *PromptBuilder) BuildQuestionPrompt(resumeText, jdText string) string {
	return fmt.Sprintf(`You are an expert technical interviewer. Based on the candidate's resume and the job description provided below, generate exactly 5 relevant technical interview questions.

**Resume:**
%s

**Job Description:**
%s

**Instructions:**
1. Generate exactly 5 questions
2. Questions should be relevant to the candidate's experience and the job requirements
3. Mix behavioral and technical questions
4. Format: Output ONLY the questions, one per line, numbered as 1. 2. 3. 4. 5.
5. DO NOT include any introductory text, headers, or explanations
6. DO NOT include phrases like "Here are the questions" or "Interview questions:"
7. Make questions specific and actionable
8. Focus on skills, experience, and technologies mentioned in both documents

Example format:
1. [First question here]
2. [Second question here]
3. [Third question here]
4. [Fourth question here]
5. [Fifth question here]

Generate the 5 interview questions now (questions only, no additional text):`,
		resumeText, jdText)
}

// BuildScoringPrompt creates the prompt for evaluating a single answer.
func (pb *PromptBuilder) BuildScoringPrompt(question, answer, resumeURL, jdURL string) string {
	return fmt.Sprintf(`You are an expert technical interviewer. Evaluate the candidate's answer to the following question.

Question: %s

Candidate's Answer: %s

Context: This is for a position matching the job description at %s.
The candidate's resume is available at %s.

Please provide your evaluation in the following EXACT format:

SCORE: [number from 1-10]
FEEDBACK: [Your detailed feedback in 100 words maximum]

Scoring criteria:
- 1-3: Poor (incorrect, irrelevant, or no substantial answer)
- 4-5: Below Average (partially correct but missing key points)
- 6-7: Good (correct with minor gaps)
- 8-9: Very Good (comprehensive and well-explained)
- 10: Excellent (exceptional answer with depth and clarity)

Provide constructive feedback focusing on:
- Accuracy and relevance
- Depth of understanding
- Areas for improvement`,
		question, answer, jdURL, resumeURL)
}
