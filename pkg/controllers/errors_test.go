package controller

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	responseDto "github.com/sh5080/quickvest-go/pkg/types/dtos/responses"
	model "github.com/sh5080/quickvest-go/pkg/types/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		errType    model.ErrorType
		wantStatus int
		wantCode   string
	}{
		{model.ErrorTypeMalformedReply, fiber.StatusInternalServerError, responseDto.CodeMalformedExtractionReply},
		{model.ErrorTypePipeline, fiber.StatusInternalServerError, responseDto.CodeExtractionPipelineError},
		{model.ErrorTypeValidation, fiber.StatusBadRequest, responseDto.CodeBadRequest},
		{model.ErrorTypeNotImplemented, fiber.StatusNotImplemented, responseDto.CodeNotImplemented},
		{model.ErrorTypeConfig, fiber.StatusInternalServerError, responseDto.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(string(tt.errType), func(t *testing.T) {
			status, code := statusFor(tt.errType)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestCodeForStatus(t *testing.T) {
	assert.Equal(t, responseDto.CodeBadRequest, codeForStatus(fiber.StatusBadRequest))
	assert.Equal(t, responseDto.CodePayloadTooLarge, codeForStatus(fiber.StatusRequestEntityTooLarge))
	assert.Equal(t, responseDto.CodeNotFound, codeForStatus(fiber.StatusNotFound))
	assert.Equal(t, responseDto.CodeInternal, codeForStatus(fiber.StatusBadGateway))
}

func TestDomainErrorHidesCause(t *testing.T) {
	err := model.PipelineError("Failed to process ID image.", errors.New("api key AIza-123 rejected"))
	assert.NotContains(t, err.Error(), "AIza-123")
	assert.Equal(t, "api key AIza-123 rejected", err.Cause())
}
