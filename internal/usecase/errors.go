package usecase

// DomainError is an expected business outcome the caller must handle
// (surfaced to the operator as a 4xx).
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure (surfaced as a 5xx).
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

const (
	CodeExtractionEmpty  = "EXTRACTION_EMPTY"
	CodeExtractionFailed = "EXTRACTION_FAILED"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeCustomerNotFound = "CUSTOMER_NOT_FOUND"
	CodeDraftNotFound    = "DRAFT_NOT_FOUND"
	CodeDispatchFailed   = "DISPATCH_FAILED"
)
