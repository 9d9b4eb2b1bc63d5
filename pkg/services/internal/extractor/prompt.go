package extractor

// licensePrompt asks for exactly the keys in model.LicenseFields.
const licensePrompt = `You are an identity document parsing engine.
The user is uploading their driver's license. Extract all fields relevant for opening a financial or investment account.
Return ONLY valid JSON with the following fields:
{
    "first_name": "",
    "last_name": "",
    "full_name": "",
    "date_of_birth": "",
    "address": "",
    "city": "",
    "state": "",
    "zip_code": "",
    "country": "",
    "license_number": "",
    "issue_date": "",
    "expiry_date": "",
    "document_type": "driver_license",
    "raw_text": ""
}

If a field is missing in the document, return an empty string for that field but keep the field present.`

// LicensePrompt returns the fixed extraction prompt.
func LicensePrompt() string {
	return licensePrompt
}
