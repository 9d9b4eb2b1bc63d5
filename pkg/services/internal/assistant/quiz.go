package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sh5080/quickvest-go/pkg/configs"
	_interface "github.com/sh5080/quickvest-go/pkg/interfaces"
	model "github.com/sh5080/quickvest-go/pkg/types/models"
	"github.com/sh5080/quickvest-go/pkg/utils"
)

const (
	serviceName = "assistant"

	QuizHelpErrorMessage = "Failed to answer quiz question."
)

var errEmptyAnswer = errors.New("empty answer")

const quizHelpTemplate = `You are a helpful investment onboarding assistant.

The user is taking a suitability / risk quiz. They were asked
the following question:

QUESTION:
%s

The user then asked this follow-up question:

USER:
%s

Explain clearly what the question means, any terminology,
and how the user should think about answering it.
Be concise and user-friendly.`

// QuizImpl answers follow-up questions about risk quiz items.
type QuizImpl struct {
	inference _interface.InferenceClient
	timeout   time.Duration
}

func NewQuizService(inference _interface.InferenceClient, config *configs.EnvConfig) _interface.QuizService {
	return &QuizImpl{
		inference: inference,
		timeout:   config.Gemini.Timeout,
	}
}

// QuizHelpPrompt fills the coaching template.
func QuizHelpPrompt(questionText, userMessage string) string {
	return fmt.Sprintf(quizHelpTemplate, questionText, userMessage)
}

// Help returns the model's trimmed explanation.
func (s *QuizImpl) Help(ctx context.Context, questionText, userMessage string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.inference.Generate(ctx, model.InferenceRequest{
		Prompt: QuizHelpPrompt(questionText, userMessage),
	})
	if err != nil {
		utils.Error(serviceName, "quiz help failed: %v", err)
		return "", model.PipelineError(QuizHelpErrorMessage, err)
	}

	answer := strings.TrimSpace(reply)
	if answer == "" {
		utils.Warn(serviceName, "quiz help returned an empty answer")
		return "", model.PipelineError(QuizHelpErrorMessage, errEmptyAnswer)
	}

	return answer, nil
}
