package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sh5080/quickvest-go/pkg/configs"
	model "github.com/sh5080/quickvest-go/pkg/types/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInference struct {
	reply string
	err   error
	last  model.InferenceRequest
}

func (f *fakeInference) Generate(ctx context.Context, req model.InferenceRequest) (string, error) {
	f.last = req
	return f.reply, f.err
}

func newQuiz(inference *fakeInference) *QuizImpl {
	cfg := &configs.EnvConfig{}
	cfg.Gemini.Timeout = time.Second
	return NewQuizService(inference, cfg).(*QuizImpl)
}

func TestHelp_TrimsAnswer(t *testing.T) {
	inference := &fakeInference{reply: "\n  Volatility means how much prices swing.  \n"}
	svc := newQuiz(inference)

	answer, err := svc.Help(context.Background(), "How do you feel about volatility?", "What is volatility?")
	require.NoError(t, err)
	assert.Equal(t, "Volatility means how much prices swing.", answer)

	assert.Nil(t, inference.last.Image)
	assert.False(t, inference.last.JSONResponse)
	assert.Contains(t, inference.last.Prompt, "QUESTION:\nHow do you feel about volatility?")
	assert.Contains(t, inference.last.Prompt, "USER:\nWhat is volatility?")
}

func TestHelp_HidesCause(t *testing.T) {
	svc := newQuiz(&fakeInference{err: errors.New("quota exceeded for key AIza-secret")})

	answer, err := svc.Help(context.Background(), "q", "m")
	assert.Empty(t, answer)
	require.Error(t, err)
	assert.True(t, model.IsPipelineError(err))
	assert.NotContains(t, err.Error(), "AIza-secret")
	assert.Contains(t, err.Error(), QuizHelpErrorMessage)
}

func TestHelp_EmptyAnswer(t *testing.T) {
	svc := newQuiz(&fakeInference{reply: "   "})

	_, err := svc.Help(context.Background(), "q", "m")
	require.Error(t, err)
	assert.True(t, model.IsPipelineError(err))
	assert.ErrorIs(t, err, errEmptyAnswer)
}
