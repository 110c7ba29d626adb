package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code.
// Specific error values created with NewDomainError still match their
// taxonomy sentinel under errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrDuplicateBarcode    = NewDomainError("DUPLICATE_BARCODE", "Barcode is already in use")
	ErrConstraintViolation = NewDomainError("CONSTRAINT_VIOLATION", "Storage constraint violated")
	ErrTransactionAborted  = NewDomainError("TRANSACTION_ABORTED", "Transaction rolled back with no partial state")
	ErrStorageBusy         = NewDomainError("STORAGE_BUSY", "Storage is busy, safe to retry")
	ErrStorageUnavailable  = NewDomainError("STORAGE_UNAVAILABLE", "No writable storage location available")
	ErrInsufficientStock   = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
)
