package errors

import (
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "with cause",
			err:  NewStorageError("failed to write report", fmt.Errorf("disk full")),
			want: "[STORAGE] failed to write report: disk full",
		},
		{
			name: "without cause",
			err:  NewValidationError("date ratio out of range"),
			want: "[VALIDATION] date ratio out of range",
		},
		{
			name: "not found",
			err:  NewNotFoundError("input workbook"),
			want: "[NOT_FOUND] input workbook not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := NewParsingError("cannot read sheet", cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, cause, goerrors.Unwrap(err))
}

func TestAppError_WithContext(t *testing.T) {
	err := NewParsingError("bad cell", nil).
		WithContext("sheet", "Journal").
		WithContext("row", 12)

	assert.Equal(t, "Journal", err.Context["sheet"])
	assert.Equal(t, 12, err.Context["row"])
}

func TestIsType(t *testing.T) {
	err := NewConfigError("bad log level", nil)

	assert.True(t, IsType(err, ErrTypeConfig))
	assert.False(t, IsType(err, ErrTypeStorage))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrTypeConfig))
}
