package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	_interface "github.com/sh5080/quickvest-go/pkg/interfaces"
	requestDto "github.com/sh5080/quickvest-go/pkg/types/dtos/requests"
	responseDto "github.com/sh5080/quickvest-go/pkg/types/dtos/responses"
	model "github.com/sh5080/quickvest-go/pkg/types/models"
	"github.com/sh5080/quickvest-go/pkg/utils"
	"github.com/xeipuuv/gojsonschema"
)

const (
	onboardingPath = "/api/onboarding"
	uploadField    = "file"
)

var (
	quizHelpSchema       = utils.MustCompileSchema(requestDto.QuizHelpSchema)
	chatSchema           = utils.MustCompileSchema(requestDto.ChatSchema)
	kycVerifySchema      = utils.MustCompileSchema(requestDto.KYCVerifySchema)
	accountCreateSchema  = utils.MustCompileSchema(requestDto.AccountCreateSchema)
	recommendationSchema = utils.MustCompileSchema(requestDto.RecommendationSchema)
)

// OnboardingConfig tells the frontend where the onboarding API lives, based on
// the URL this request arrived at.
func OnboardingConfig() fiber.Handler {
	return func(c *fiber.Ctx) error {
		baseURL := strings.TrimRight(c.BaseURL(), "/")
		return c.JSON(responseDto.OnboardingConfig{
			APIBaseURL:     baseURL,
			OnboardingBase: baseURL + onboardingPath,
		})
	}
}

// CreateAccountFromLicense extracts license fields from the uploaded image and
// returns a placeholder account derived from them.
func CreateAccountFromLicense(extractionService _interface.ExtractionService, maxBytes int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		image, err := readUpload(c, maxBytes)
		if err != nil {
			return err
		}

		// a client disconnect must not abort the inference call
		ctx := context.WithoutCancel(c.UserContext())

		result, err := extractionService.ExtractLicense(ctx, image)
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(responseDto.AccountCreateFromLicense{
			AccountID:     result.Account.AccountID,
			Success:       result.Account.Success,
			ExtractedData: result.Record,
		})
	}
}

func QuizHelp(quizService _interface.QuizService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.QuizHelpRequest
		if err := utils.ParseAndValidate(c.Body(), quizHelpSchema, &req); err != nil {
			return err
		}

		answer, err := quizService.Help(c.UserContext(), req.QuestionText, req.UserMessage)
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(responseDto.QuizHelp{Answer: answer})
	}
}

func ChatNextQuestion() fiber.Handler {
	return notImplementedJSON(chatSchema, "Chat onboarding is not implemented yet.")
}

func KYCVerify() fiber.Handler {
	return notImplementedJSON(kycVerifySchema, "KYC verification is not implemented yet.")
}

func AccountCreate() fiber.Handler {
	return notImplementedJSON(accountCreateSchema, "Account creation is not implemented yet.")
}

func Recommendation() fiber.Handler {
	return notImplementedJSON(recommendationSchema, "Recommendations are not implemented yet.")
}

// DocsExtract requires an uploaded file before reporting 501.
func DocsExtract(maxBytes int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := readUpload(c, maxBytes); err != nil {
			return err
		}
		return respondError(c, model.NotImplementedError("Document extraction is not implemented yet."))
	}
}

// notImplementedJSON rejects bad bodies with 400, then answers 501.
func notImplementedJSON(schema *gojsonschema.Schema, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := utils.ValidateRequestBody(c.Body(), schema); err != nil {
			return err
		}
		return respondError(c, model.NotImplementedError(message))
	}
}

func readUpload(c *fiber.Ctx, maxBytes int64) (*model.UploadedImage, error) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "multipart field \"file\" is required")
	}

	image, err := utils.ReadUploadedImage(fh, maxBytes)
	switch {
	case errors.Is(err, utils.ErrUploadTooLarge):
		return nil, fiber.NewError(fiber.StatusRequestEntityTooLarge, err.Error())
	case err != nil:
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return image, nil
}
