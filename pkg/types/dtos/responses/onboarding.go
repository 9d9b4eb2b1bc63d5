package response

import model "github.com/sh5080/quickvest-go/pkg/types/models"

// AccountCreateFromLicense is returned by the license extraction endpoint.
type AccountCreateFromLicense struct {
	AccountID     string                `json:"account_id"`
	Success       bool                  `json:"success"`
	ExtractedData model.ExtractedRecord `json:"extracted_data"`
}

type OnboardingConfig struct {
	APIBaseURL     string `json:"api_base_url"`
	OnboardingBase string `json:"onboarding_base"`
}

type QuizHelp struct {
	Answer string `json:"answer"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Error codes.
const (
	CodeMalformedExtractionReply = "MALFORMED_EXTRACTION_REPLY"
	CodeExtractionPipelineError  = "EXTRACTION_PIPELINE_ERROR"
	CodeBadRequest               = "BAD_REQUEST"
	CodePayloadTooLarge          = "PAYLOAD_TOO_LARGE"
	CodeNotImplemented           = "NOT_IMPLEMENTED"
	CodeNotFound                 = "NOT_FOUND"
	CodeInternal                 = "INTERNAL_ERROR"
)
