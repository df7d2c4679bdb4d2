package gemini

import (
	"context"

	"github.com/fwojciec/resumedb"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ resumedb.TokenCounter = (*TokenCounter)(nil)

// TokenCounter measures prompt size locally, without calling the API.
// The tokenizer vocabulary is downloaded and cached on first use.
type TokenCounter struct {
	model string
	tok   *tokenizer.LocalTokenizer
}

// NewTokenCounter loads the local tokenizer for model.
// Returns EINVALID for a model the tokenizer does not know and ETOOL when
// its vocabulary cannot be loaded.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		return nil, resumedb.Errorf(resumedb.EINVALID, "model required")
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		if unsupportedModel(err, model) {
			return nil, resumedb.WrapError(resumedb.EINVALID, err, "no local tokenizer for model %s", model)
		}
		return nil, resumedb.WrapError(resumedb.ETOOL, err, "load tokenizer for model %s", model)
	}
	return &TokenCounter{model: model, tok: tok}, nil
}

func unsupportedModel(err error, model string) bool {
	return err.Error() == "model "+model+" is not supported"
}

// CountTokens returns the number of tokens text uses as a user turn.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}, nil)
	if err != nil {
		return 0, resumedb.WrapError(resumedb.ETOOL, err, "count tokens for model %s", tc.model)
	}
	return int(result.TotalTokens), nil
}
