package extractor

import (
	"encoding/json"
	"fmt"
	"strings"

	model "github.com/sh5080/quickvest-go/pkg/types/models"
	"github.com/sh5080/quickvest-go/pkg/utils"
)

// Values may be strings or null; unknown keys pass validation and are dropped later.
var replySchema = utils.MustCompileSchema(map[string]interface{}{
	"type": "object",
	"additionalProperties": map[string]interface{}{
		"type": []interface{}{"string", "null"},
	},
})

// ParseReply turns the model's reply text into an ExtractedRecord holding
// exactly the keys of model.LicenseFields. Missing and null values become "".
func ParseReply(text string) (model.ExtractedRecord, error) {
	raw := []byte(stripCodeFence(text))

	if err := utils.ValidateJSON(replySchema, raw); err != nil {
		return nil, err
	}

	var values map[string]*string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("decode reply: %w", err)
	}

	record := make(model.ExtractedRecord, len(model.LicenseFields))
	for _, field := range model.LicenseFields {
		if v := values[field]; v != nil {
			record[field] = *v
		} else {
			record[field] = ""
		}
	}
	return record, nil
}

// DeriveAccount builds the placeholder account for a record.
func DeriveAccount(record model.ExtractedRecord) model.AccountResult {
	licenseNumber := record[model.FieldLicenseNumber]
	if licenseNumber == "" {
		licenseNumber = model.UnknownLicensePlaceholder
	}
	return model.AccountResult{
		AccountID: model.AccountIDPrefix + licenseNumber,
		Success:   true,
	}
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		// drop the info string, e.g. "json"
		trimmed = trimmed[idx+1:]
	} else {
		trimmed = strings.TrimPrefix(trimmed, "json")
	}
	trimmed = strings.TrimSpace(trimmed)
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}
