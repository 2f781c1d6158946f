package base64

import "errors"

var (
	// ErrInputEmpty is returned by Encode and DecodeFast when the
	// input is nil.
	ErrInputEmpty = errors.New("base64: no input data")

	// ErrStringEmpty is returned by Decode when the input is nil.
	ErrStringEmpty = errors.New("base64: no Base64 input")

	// ErrNoMemory is returned when the output buffer cannot be
	// allocated.
	ErrNoMemory = errors.New("base64: cannot allocate output")

	// ErrCorrupt is returned when the Base64-encoded input is
	// incorrect.
	ErrCorrupt = errors.New("base64: input is corrupt")

	// ErrUnknown is returned for any other failure.
	ErrUnknown = errors.New("base64: unknown error")
)

// Kind classifies the errors returned by this package.
type Kind int

const (
	KindOK Kind = iota
	KindInputDataEmpty
	KindNoMemory
	KindBase64StringEmpty
	KindBase64EncodingInvalid
	KindUnknownError
)

var kindNames = [...]string{
	KindOK:                    "OK",
	KindInputDataEmpty:        "NoData",
	KindNoMemory:              "NotEnoughMemory",
	KindBase64StringEmpty:     "NoData",
	KindBase64EncodingInvalid: "IncorrectEncoding",
	KindUnknownError:          "UnknownError",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "UnknownError"
	}
	return kindNames[k]
}

// KindOf returns the Kind of err.
//
// A nil error is KindOK. Errors that do not wrap one of this
// package's sentinel errors are KindUnknownError.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrInputEmpty):
		return KindInputDataEmpty
	case errors.Is(err, ErrNoMemory):
		return KindNoMemory
	case errors.Is(err, ErrStringEmpty):
		return KindBase64StringEmpty
	case errors.Is(err, ErrCorrupt):
		return KindBase64EncodingInvalid
	default:
		return KindUnknownError
	}
}
