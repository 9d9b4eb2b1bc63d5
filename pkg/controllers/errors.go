package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	responseDto "github.com/sh5080/quickvest-go/pkg/types/dtos/responses"
	model "github.com/sh5080/quickvest-go/pkg/types/models"
	"github.com/sh5080/quickvest-go/pkg/utils"
)

// respondError writes err as the JSON error body. DomainError causes are logged, never sent.
func respondError(c *fiber.Ctx, err error) error {
	var de *model.DomainError
	if !errors.As(err, &de) {
		return ErrorHandler(c, err)
	}

	if cause := de.Cause(); cause != "" {
		utils.Debug("http", "%s %s failed: %s (cause: %s)", c.Method(), c.Path(), de.Message, cause)
	}

	status, code := statusFor(de.Type)
	return c.Status(status).JSON(responseDto.Error{
		Error: de.Message,
		Code:  code,
	})
}

func statusFor(errType model.ErrorType) (int, string) {
	switch errType {
	case model.ErrorTypeMalformedReply:
		return fiber.StatusInternalServerError, responseDto.CodeMalformedExtractionReply
	case model.ErrorTypePipeline:
		return fiber.StatusInternalServerError, responseDto.CodeExtractionPipelineError
	case model.ErrorTypeValidation:
		return fiber.StatusBadRequest, responseDto.CodeBadRequest
	case model.ErrorTypeNotImplemented:
		return fiber.StatusNotImplemented, responseDto.CodeNotImplemented
	default:
		return fiber.StatusInternalServerError, responseDto.CodeInternal
	}
}

// ErrorHandler is the app-wide fiber error handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var de *model.DomainError
	if errors.As(err, &de) {
		return respondError(c, de)
	}

	status := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		message = fe.Message
	} else {
		utils.Error("http", "%s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(status).JSON(responseDto.Error{
		Error: message,
		Code:  codeForStatus(status),
	})
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return responseDto.CodeBadRequest
	case fiber.StatusRequestEntityTooLarge:
		return responseDto.CodePayloadTooLarge
	case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
		return responseDto.CodeNotFound
	case fiber.StatusNotImplemented:
		return responseDto.CodeNotImplemented
	default:
		return responseDto.CodeInternal
	}
}
