package item

import "errors"

var (
	ErrInvalidItem  = errors.New("name and colour must be set")
	ErrItemNotFound = errors.New("item not found")
)

// Kind classifies a use case error for the boundary layer.
type Kind int

const (
	KindUnexpected Kind = iota
	KindInvalidInput
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	default:
		return "unexpected"
	}
}

// KindOf reports the Kind of err. A nil error has no kind and reports KindUnexpected.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidItem):
		return KindInvalidInput
	case errors.Is(err, ErrItemNotFound):
		return KindNotFound
	default:
		return KindUnexpected
	}
}
