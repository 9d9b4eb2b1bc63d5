package extractor

import (
	"context"

	model "github.com/sh5080/quickvest-go/pkg/types/models"
)

type fakeInference struct {
	reply    string
	err      error
	calls    int
	requests []model.InferenceRequest
	block    bool
}

func (f *fakeInference) Generate(ctx context.Context, req model.InferenceRequest) (string, error) {
	f.calls++
	f.requests = append(f.requests, req)
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.reply, f.err
}
