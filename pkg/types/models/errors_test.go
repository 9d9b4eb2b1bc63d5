package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError(t *testing.T) {
	cause := errors.New("connection reset")
	err := PipelineError("Failed to process ID image.", cause)

	assert.Equal(t, "[pipeline] Failed to process ID image.", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "connection reset", err.Cause())

	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, IsPipelineError(wrapped))
	assert.False(t, IsMalformedReply(wrapped))
	assert.Equal(t, ErrorTypePipeline, ErrorTypeOf(wrapped))
}

func TestErrorTypeOf_Plain(t *testing.T) {
	assert.Equal(t, ErrorType(""), ErrorTypeOf(errors.New("x")))
	assert.Equal(t, "", NotImplementedError("later").Cause())
}
