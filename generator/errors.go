package generator

// ValidationError 는 사용자 입력 검증 실패다. 사용자에게 노출되는 유일한 실패 유형이다.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

const (
	CodeProductRequired = "product_required"
	CodeURLRequired     = "url_required"
	CodeInvalidCount    = "invalid_count"
	CodeInvalidLength   = "invalid_length"
	CodeInvalidKeywords = "invalid_keyword_count"
	CodeInvalidStyle    = "invalid_style"
)

func invalid(code, msg string) *ValidationError {
	return &ValidationError{Code: code, Message: msg}
}
