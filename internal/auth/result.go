package auth

// Kind classifies an authentication failure. Callers branch on Kind,
// never on message text.
type Kind string

const (
	KindValidation       Kind = "validation"
	KindProvider         Kind = "provider"
	KindDuplicateAccount Kind = "duplicate_account"
	KindCodeExchange     Kind = "code_exchange"
	KindIdentityFetch    Kind = "identity_fetch"
	KindProfileWrite     Kind = "profile_write"
	KindUnexpected       Kind = "unexpected"
)

// Error is a classified auth failure carrying a human-readable message
// suitable for display.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds a classified auth error.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

const StatusSuccess = "success"

// Result is the uniform outcome of a non-redirecting auth action.
// Status is "success" or the failure message; Kind is set only on
// failure.
type Result struct {
	Status string    `json:"status"`
	Kind   Kind      `json:"kind,omitempty"`
	User   *Identity `json:"user"`
}

// Success wraps an identity in a successful result. A nil identity is
// allowed for actions that do not return one (e.g. password reset).
func Success(user *Identity) Result {
	return Result{Status: StatusSuccess, User: user}
}

// Failure maps an error to a failed result. Classified errors keep
// their kind; anything else is reported as a provider failure.
func Failure(err error) Result {
	if ae, ok := err.(*Error); ok {
		return Result{Status: ae.Message, Kind: ae.Kind}
	}
	return Result{Status: err.Error(), Kind: KindProvider}
}
