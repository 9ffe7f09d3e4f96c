package apierror

// Problem type URIs, used as the "type" member of RFC 9457 responses.
const (
	TypeValidation      = "urn:companion:error:validation"
	TypeBadRequest      = "urn:companion:error:bad_request"
	TypeInvalidTimezone = "urn:companion:error:invalid_timezone"
	TypeInvalidDevice   = "urn:companion:error:invalid_device"
	TypeUnauthorized    = "urn:companion:error:unauthorized"
	TypeNotFound        = "urn:companion:error:not_found"
	TypeConflict        = "urn:companion:error:conflict"
	TypeRateLimit       = "urn:companion:error:rate_limit"
	TypeRecordSource    = "urn:companion:error:record_source"
	TypeInternal        = "urn:companion:error:internal"
)

const (
	TitleValidation      = "Validation Error"
	TitleBadRequest      = "Bad Request"
	TitleInvalidTimezone = "Invalid Report Calendar"
	TitleInvalidDevice   = "Invalid Device Identifier"
	TitleUnauthorized    = "Authentication Required"
	TitleNotFound        = "Resource Not Found"
	TitleConflict        = "Resource Conflict"
	TitleRateLimit       = "Rate Limit Exceeded"
	TitleRecordSource    = "Record Source Unavailable"
	TitleInternal        = "Internal Server Error"
)
