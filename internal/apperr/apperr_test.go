package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutOfRangeError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *OutOfRangeError
		want string
	}{
		{
			name: "single index",
			err:  &OutOfRangeError{Op: "remove", Index: 5, Len: 3},
			want: "remove: index 5 out of bounds for length 3",
		},
		{
			name: "range",
			err:  &OutOfRangeError{Op: "remove range", Index: 2, Count: 4, Len: 3},
			want: "remove range: range [2, 6) out of bounds for length 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsBenign(t *testing.T) {
	invalid := &InvalidActionError{Action: "delete column", Reason: "it is the last column"}
	wrapped := fmt.Errorf("dialog: %w", invalid)

	assert.True(t, IsBenign(invalid))
	assert.True(t, IsBenign(wrapped))
	assert.False(t, IsBenign(&OutOfRangeError{Op: "query", Index: 1}))
	assert.False(t, IsBenign(errors.New("boom")))
	assert.False(t, IsBenign(nil))
}

func TestIsKind(t *testing.T) {
	oor := fmt.Errorf("wrap: %w", &OutOfRangeError{Op: "move"})
	inv := fmt.Errorf("wrap: %w", &InvalidActionError{Action: "x"})

	assert.True(t, IsOutOfRange(oor))
	assert.False(t, IsOutOfRange(inv))
	assert.True(t, IsInvalidAction(inv))
	assert.False(t, IsInvalidAction(oor))
	assert.Equal(t, "cannot x: ", (&InvalidActionError{Action: "x"}).Error())
}
