package extract

// FailureKind classifies a failed extraction attempt. The retry loop
// matches on the kind: everything except KindUnexpected consumes one
// attempt and continues; KindUnexpected aborts the loop immediately.
type FailureKind string

const (
	KindEmptyResponse     FailureKind = "empty_response"     // Backend returned no body
	KindDecodeFailure     FailureKind = "decode_failure"     // Body is not valid JSON
	KindValidationFailure FailureKind = "validation_failure" // JSON does not match the modification schema
	KindUnexpected        FailureKind = "unexpected"         // Anything else (backend fault, missing field)
)

// attemptFailure is the per-attempt error the retry loop dispatches on.
// It never escapes the engine; callers only ever see a list.
type attemptFailure struct {
	Kind FailureKind
	Err  error
}
