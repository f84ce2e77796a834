package errcode

import (
	"errors"
	"net/http"
)

// Identity provider codes
const (
	AuthEmailAlreadyInUse   = "auth/email-already-in-use"
	AuthInvalidEmail        = "auth/invalid-email"
	AuthOperationNotAllowed = "auth/operation-not-allowed"
	AuthWeakPassword        = "auth/weak-password"
	AuthUserDisabled        = "auth/user-disabled"
	AuthUserNotFound        = "auth/user-not-found"
	AuthWrongPassword       = "auth/wrong-password"
	AuthTooManyRequests     = "auth/too-many-requests"
	AuthNetworkFailed       = "auth/network-request-failed"
	AuthInvalidCredential   = "auth/invalid-credential"
	AuthMissingPassword     = "auth/missing-password"
	AuthMissingEmail        = "auth/missing-email"
	AuthInvalidToken        = "auth/invalid-token"
	AuthForbidden           = "auth/forbidden"
	AuthPasswordMismatch    = "auth/password-mismatch"
	AuthPasswordTooShort    = "auth/password-too-short"
	AuthInvalidResetToken   = "auth/invalid-reset-token"
	AuthMemberNotRegistered = "auth/member-not-registered"
)

// Application codes
const (
	DataNotFound           = "data/not-found"
	DataUnavailable        = "data/unavailable"
	ValidationFailed       = "validation/failed"
	DocumentInvalidType    = "document/invalid-type"
	DocumentTooLarge       = "document/too-large"
	PostMissingFields      = "post/missing-fields"
	ConfirmationRequired   = "moderation/confirmation-required"
	RegistrationIncomplete = "registration/incomplete"
	DraftNotFound          = "draft/not-found"
	DraftInvalidRowKind    = "draft/invalid-row-kind"
	ContactMissingName     = "contact/missing-name"
	ContactMissingEmail    = "contact/missing-email"
	ContactInvalidEmail    = "contact/invalid-email"
	ContactMissingSubject  = "contact/missing-subject"
	ContactMissingMessage  = "contact/missing-message"
	ImportInvalidFile      = "import/invalid-file"
)

// Error carries a code from the tables above plus the underlying cause
type Error struct {
	Code string
	Err  error
}

// New creates a coded error without a cause
func New(code string) *Error {
	return &Error{Code: code}
}

// Wrap creates a coded error around an underlying cause
func Wrap(code string, err error) *Error {
	return &Error{Code: code, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two coded errors by code so sentinel comparisons work with errors.Is
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

// Message returns the user-facing message for this error
func (e *Error) Message() string {
	return Message(e.Code)
}

// Status returns the HTTP status for this error
func (e *Error) Status() int {
	return Status(e.Code)
}

// CodeOf extracts the code from any error, or "" when it carries none
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Status returns the HTTP status mapped to code, 500 when unmapped
func Status(code string) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
