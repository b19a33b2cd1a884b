package cmdargs

import "github.com/quindle/cmdargs/errs"

// Status is the terminal state of a parse.
type Status int

const (
	// StatusNone means the parse is still in progress.
	StatusNone Status = iota
	// StatusSuccess means every token was consumed and all checks passed.
	StatusSuccess
	// StatusError means the parse failed; Err carries the category.
	StatusError
	// StatusCanceled means a hook, Method argument or the prefix terminator
	// stopped the parse early.
	StatusCanceled
)

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	case StatusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// ParseResult is the outcome of one Parse call.
type ParseResult struct {
	// Status is the terminal state.
	Status Status
	// Err is set when Status is StatusError.
	Err *errs.Error
	// ArgumentName names the argument that triggered termination, if any.
	ArgumentName string
	// HelpRequested is set on cancellations that asked for help output.
	HelpRequested bool
	// SuccessLike is set on cancellations that count as success, e.g. an
	// explicit --version style termination.
	SuccessLike bool
	// Remaining holds the unconsumed raw tokens on error or cancellation.
	Remaining []string
}

// Success reports whether the outcome should be treated as successful:
// either a full parse or a success-like cancellation.
func (r *ParseResult) Success() bool {
	if r.Status == StatusSuccess {
		return true
	}
	return r.Status == StatusCanceled && r.SuccessLike
}

// Canceled reports whether the parse was canceled rather than completed or
// failed.
func (r *ParseResult) Canceled() bool {
	return r.Status == StatusCanceled
}
