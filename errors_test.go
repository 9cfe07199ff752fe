package zipstat

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctx  *ErrorContext
		base error
		want string
	}{
		{
			name: "operation only",
			ctx:  NewErrorContext("export", ""),
			want: "zipstat: export failed",
		},
		{
			name: "with file and details",
			ctx:  NewErrorContext("read", "covid.json").WithDetails("line 3"),
			base: ErrInvalidJSON,
			want: "zipstat: read failed, file: covid.json, details: line 3: " + ErrInvalidJSON.Error(),
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.ctx.Error(tt.base)
			assert.EqualError(t, err, tt.want)
			if tt.base != nil {
				assert.ErrorIs(t, err, tt.base)
			}
		})
	}
}

func TestErrorContext_Unwrap(t *testing.T) {
	t.Parallel()

	err := NewErrorContext("export", "zipstat.db").Error(os.ErrExist)
	assert.True(t, errors.Is(err, os.ErrExist))
}
