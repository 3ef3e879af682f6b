package errors

// ErrorCode identifies the class of an application error in responses and
// logs.
type ErrorCode string

const (
	ErrorCode_INTERNAL                 ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT         ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_INVALID_PAYLOAD          ErrorCode = "INVALID_PAYLOAD"
	ErrorCode_REPORT_GENERATION_FAILED ErrorCode = "REPORT_GENERATION_FAILED"
	ErrorCode_REPORT_EXPORT_FAILED     ErrorCode = "REPORT_EXPORT_FAILED"
)

// String implements fmt.Stringer
func (c ErrorCode) String() string { return string(c) }
