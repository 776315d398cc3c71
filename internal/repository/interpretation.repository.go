package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayush6624/go-chatgpt"
)

// InterpretationRepository expands an outlook's narrative context. The
// wording quality is best-effort; callers always have a templated
// fallback and must tolerate an empty answer.
type InterpretationRepository interface {
	OutlookNarrative(ctx context.Context, category, likelihood string, patternNames []string) (string, error)
}

type interpretationRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewInterpretationRepository(apiKey string) (InterpretationRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return interpretationRepositoryHandler{
		GptClient: client,
	}, nil
}

const narrativePrompt = `
You are writing one short paragraph of context for an astrological forecast report. You will be given an event category, a likelihood label, and the names of the Vedic planetary patterns currently active. Summarize, in plain language and at most three sentences, what the active patterns have historically coincided with for that category. Do not give advice, do not hedge with disclaimers, and do not mention that you are a language model.
`

func (h interpretationRepositoryHandler) OutlookNarrative(ctx context.Context, category, likelihood string, patternNames []string) (string, error) {
	message := fmt.Sprintf("%s\ncategory: %s\nlikelihood: %s\npatterns: %s",
		narrativePrompt, category, likelihood, strings.Join(patternNames, "; "))

	res, err := h.GptClient.SimpleSend(ctx, message)
	if err != nil {
		return "", fmt.Errorf("failed to generate narrative: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", nil
	}

	return strings.TrimSpace(res.Choices[0].Message.Content), nil
}
