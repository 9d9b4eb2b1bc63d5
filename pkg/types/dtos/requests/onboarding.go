package request

// QuizHelpRequest asks for help on one risk-quiz question.
type QuizHelpRequest struct {
	QuestionText string `json:"question_text"`
	UserMessage  string `json:"user_message"`
}

type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type KYCVerifyRequest struct {
	UserID  string                 `json:"user_id"`
	KYCData map[string]interface{} `json:"kyc_data"`
}

type AccountCreateRequest struct {
	UserID      string                 `json:"user_id"`
	AccountData map[string]interface{} `json:"account_data"`
}

type RecommendationRequest struct {
	UserID         string                 `json:"user_id"`
	OnboardingData map[string]interface{} `json:"onboarding_data"`
}

// JSON schemas for the request bodies above.
var (
	QuizHelpSchema = objectSchema(map[string]string{
		"question_text": "string",
		"user_message":  "string",
	})

	ChatSchema = objectSchema(map[string]string{
		"user_id": "string",
		"message": "string",
	})

	KYCVerifySchema = objectSchema(map[string]string{
		"user_id":  "string",
		"kyc_data": "object",
	})

	AccountCreateSchema = objectSchema(map[string]string{
		"user_id":      "string",
		"account_data": "object",
	})

	RecommendationSchema = objectSchema(map[string]string{
		"user_id":         "string",
		"onboarding_data": "object",
	})
)

// objectSchema builds an object schema where every listed property is required.
func objectSchema(props map[string]string) map[string]interface{} {
	properties := make(map[string]interface{}, len(props))
	required := make([]interface{}, 0, len(props))
	for name, typ := range props {
		properties[name] = map[string]interface{}{"type": typ}
		required = append(required, name)
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}
