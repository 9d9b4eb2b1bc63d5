package extractor

import (
	"context"
	"fmt"
	"time"

	"github.com/sh5080/quickvest-go/pkg/configs"
	_interface "github.com/sh5080/quickvest-go/pkg/interfaces"
	model "github.com/sh5080/quickvest-go/pkg/types/models"
	"github.com/sh5080/quickvest-go/pkg/utils"
)

const (
	serviceName = "extractor"

	MalformedReplyMessage = "Gemini response was not valid JSON. Check prompt or response text."
	PipelineErrorMessage  = "Failed to process ID image."
)

// Extraction outcome labels.
const (
	outcomeSuccess        = "success"
	outcomeMalformedReply = "malformed_reply"
	outcomePipeline       = "pipeline"
)

// LicenseImpl runs the driver's license extraction pipeline.
type LicenseImpl struct {
	inference _interface.InferenceClient
	timeout   time.Duration
}

// NewLicenseService wires the pipeline to an inference client.
func NewLicenseService(inference _interface.InferenceClient, config *configs.EnvConfig) _interface.ExtractionService {
	return &LicenseImpl{
		inference: inference,
		timeout:   config.Gemini.Timeout,
	}
}

// ExtractLicense sends the image to the model once and parses the reply.
// Nothing is persisted and nothing is retried.
func (s *LicenseImpl) ExtractLicense(ctx context.Context, image *model.UploadedImage) (result *model.ExtractionResult, err error) {
	if image == nil || len(image.Data) == 0 {
		return nil, model.ValidationError("image is required", nil)
	}

	defer func() {
		if r := recover(); r != nil {
			utils.Error(serviceName, "panic during extraction of %q: %v", image.Filename, r)
			utils.RecordExtraction(outcomePipeline)
			result = nil
			err = model.PipelineError(PipelineErrorMessage, fmt.Errorf("panic: %v", r))
		}
	}()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	contentType := image.ContentType
	if contentType == "" {
		contentType = model.DefaultImageContentType
	}

	start := time.Now()
	reply, err := s.inference.Generate(ctx, model.InferenceRequest{
		Prompt: LicensePrompt(),
		Image: &model.ImagePayload{
			MimeType: contentType,
			Data:     image.Data,
		},
		JSONResponse: true,
	})
	if err != nil {
		utils.Error(serviceName, "inference failed for %q after %s: %v", image.Filename, time.Since(start), err)
		utils.RecordExtraction(outcomePipeline)
		return nil, model.PipelineError(PipelineErrorMessage, err)
	}

	record, err := ParseReply(reply)
	if err != nil {
		utils.Warn(serviceName, "malformed reply for %q: %v", image.Filename, err)
		utils.RecordExtraction(outcomeMalformedReply)
		return nil, model.MalformedReplyError(MalformedReplyMessage, err)
	}

	account := DeriveAccount(record)
	utils.Info(serviceName, "extracted license fields from %q in %s", image.Filename, time.Since(start))
	utils.RecordExtraction(outcomeSuccess)

	return &model.ExtractionResult{
		Record:  record,
		Account: account,
	}, nil
}
