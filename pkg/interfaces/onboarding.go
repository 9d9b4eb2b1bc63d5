package _interface

import (
	"context"

	model "github.com/sh5080/quickvest-go/pkg/types/models"
)

// InferenceClient sends one prompt (optionally with an image) to the generative model
// and returns the reply text.
type InferenceClient interface {
	Generate(ctx context.Context, req model.InferenceRequest) (string, error)
}

// ExtractionService turns a driver's license image into structured fields.
type ExtractionService interface {
	// ExtractLicense fails with a malformed_reply or pipeline DomainError.
	ExtractLicense(ctx context.Context, image *model.UploadedImage) (*model.ExtractionResult, error)
}

// QuizService explains risk-quiz questions to the user.
type QuizService interface {
	Help(ctx context.Context, questionText, userMessage string) (string, error)
}
