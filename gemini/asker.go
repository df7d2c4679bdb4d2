// Package gemini answers questions about stored resumes with Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/resumedb"
	"google.golang.org/genai"
)

// Model is the Gemini model used for answers and token counting.
const Model = "gemini-2.5-flash"

// MaxPromptTokens bounds the prompt sent to Model.
const MaxPromptTokens = 1_000_000

// Ensure Asker implements resumedb.Asker at compile time.
var _ resumedb.Asker = (*Asker)(nil)

// Asker implements resumedb.Asker using Google Gemini.
type Asker struct {
	client  *genai.Client
	resumes resumedb.ResumeService

	// Tokens, if set, is used to reject prompts over MaxPromptTokens
	// before they are sent.
	Tokens resumedb.TokenCounter
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, resumes resumedb.ResumeService) *Asker {
	return &Asker{client: client, resumes: resumes}
}

// Ask answers a natural language question about the resumes matching filter.
func (a *Asker) Ask(ctx context.Context, filter resumedb.ResumeFilter, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", resumedb.Errorf(resumedb.EINVALID, "question required")
	}

	resumes, err := a.resumes.FindResumes(ctx, filter)
	if err != nil {
		return "", err
	}
	if len(resumes) == 0 {
		return "", resumedb.Errorf(resumedb.ENOTFOUND, "no resumes found")
	}

	prompt := BuildUserPrompt(resumes, question)
	if a.Tokens != nil {
		n, err := a.Tokens.CountTokens(ctx, prompt)
		if err != nil {
			return "", err
		}
		if n > MaxPromptTokens {
			return "", resumedb.Errorf(resumedb.EINVALID,
				"%d resumes need %d tokens, over the %d limit; narrow them with a filter", len(resumes), n, MaxPromptTokens)
		}
	}

	result, err := a.client.Models.GenerateContent(ctx, Model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", resumedb.Errorf(resumedb.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a recruiting assistant answering questions about a collection of resumes. Answer based only on the resumes provided and name the resume each fact comes from. If the answer is not in the resumes, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the resumes and question.
func BuildUserPrompt(resumes []*resumedb.Resume, question string) string {
	var sb strings.Builder
	sb.WriteString("<resumes>\n")
	for i, r := range resumes {
		sb.WriteString("<resume>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<filename>%s</filename>\n", r.Filename)
		fmt.Fprintf(&sb, "<path>%s</path>\n", r.Path)
		fmt.Fprintf(&sb, "<content>%s</content>\n", r.Content)
		sb.WriteString("</resume>\n")
	}
	sb.WriteString("</resumes>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
