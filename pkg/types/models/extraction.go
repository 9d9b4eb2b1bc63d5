package model

const (
	// DefaultImageContentType is used when an upload declares no content type.
	DefaultImageContentType = "image/jpeg"

	AccountIDPrefix           = "acct_"
	UnknownLicensePlaceholder = "unknown"
)

// Keys requested from the inference service, in prompt order.
const (
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldFullName      = "full_name"
	FieldDateOfBirth   = "date_of_birth"
	FieldAddress       = "address"
	FieldCity          = "city"
	FieldState         = "state"
	FieldZipCode       = "zip_code"
	FieldCountry       = "country"
	FieldLicenseNumber = "license_number"
	FieldIssueDate     = "issue_date"
	FieldExpiryDate    = "expiry_date"
	FieldDocumentType  = "document_type"
	FieldRawText       = "raw_text"
)

// LicenseFields is the fixed key set of every ExtractedRecord.
var LicenseFields = []string{
	FieldFirstName,
	FieldLastName,
	FieldFullName,
	FieldDateOfBirth,
	FieldAddress,
	FieldCity,
	FieldState,
	FieldZipCode,
	FieldCountry,
	FieldLicenseNumber,
	FieldIssueDate,
	FieldExpiryDate,
	FieldDocumentType,
	FieldRawText,
}

// UploadedImage is a fully buffered upload; it lives for one request.
type UploadedImage struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ImagePayload is the image part of an inference request.
type ImagePayload struct {
	MimeType string
	Data     []byte
}

// InferenceRequest is one prompt (optionally with an image) sent to the model.
type InferenceRequest struct {
	Prompt string
	Image  *ImagePayload
	// JSONResponse asks the model for application/json output.
	JSONResponse bool
}

// ExtractedRecord maps every key of LicenseFields to its extracted value.
type ExtractedRecord map[string]string

// AccountResult is derived from an ExtractedRecord; it is never persisted.
type AccountResult struct {
	AccountID string
	Success   bool
}

type ExtractionResult struct {
	Record  ExtractedRecord
	Account AccountResult
}
