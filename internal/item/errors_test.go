package item

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"invalid", ErrInvalidItem, KindInvalidInput},
		{"wrapped invalid", fmt.Errorf("create: %w", ErrInvalidItem), KindInvalidInput},
		{"not found", ErrItemNotFound, KindNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", ErrItemNotFound), KindNotFound},
		{"other", errors.New("connection reset"), KindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}
