package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	// Domain errors — used in usecase/repository
	ErrDocumentNotFound       = NotFound("document not found")
	ErrWriteConflict          = Aborted("write conflict: document changed since read")
	ErrConversationNotFound   = NotFound("conversation not found")
	ErrConversationExists     = AlreadyExists("conversation already exists")
	ErrUnsupportedMessageKind = InvalidArg("unsupported message kind")
	ErrEmptyMessage           = InvalidArg("message content cannot be empty")
	ErrSelfConversation       = InvalidArg("cannot start a conversation with yourself")
	ErrInvalidIdentity        = InvalidArg("identity must be derived from a valid email address")
	ErrStoreTimeout           = Timeout("backing store operation timed out")
	ErrSendCancelled          = Aborted("send cancelled before commit")
)

// MalformedRecordError names the record field that failed validation on decode.
type MalformedRecordError struct {
	Field string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record: missing or invalid field %q", e.Field)
}

func MalformedRecord(field string) error {
	return Wrap(CodeInvalidArgument, "failed to decode message record", &MalformedRecordError{Field: field})
}

// PartialSyncError reports a send that committed some but not all of its
// stages. Retryable tells the caller whether re-driving the failed stage
// can complete the sync.
type PartialSyncError struct {
	Stage     string
	Retryable bool
	Cause     error
}

func (e *PartialSyncError) Error() string {
	return fmt.Sprintf("partial sync: stage %q failed (retryable=%v): %v", e.Stage, e.Retryable, e.Cause)
}

func (e *PartialSyncError) Unwrap() error { return e.Cause }

func PartialSync(stage string, retryable bool, cause error) error {
	return &PartialSyncError{Stage: stage, Retryable: retryable, Cause: cause}
}

// AsPartialSync unwraps err into target if a PartialSyncError is in the chain.
func AsPartialSync(err error, target **PartialSyncError) bool {
	return stderrors.As(err, target)
}
