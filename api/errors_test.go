package api_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/hioload-buf/api"
)

func TestStructuredError(t *testing.T) {
	err := api.NewError(api.ErrCodeOverflow, "merged length overflows int").
		WithContext("accumulated", 100).
		WithContext("next", 28)

	assert.Equal(t, api.ErrCodeOverflow, err.Code)
	assert.Equal(t, 100, err.Context["accumulated"])
	assert.Equal(t, 28, err.Context["next"])
	assert.Contains(t, err.Error(), "merged length overflows int")
	assert.Contains(t, err.Error(), "accumulated")
}

func TestStructuredErrorWithoutContext(t *testing.T) {
	err := api.NewError(api.ErrCodeInvalidArgument, "nil region")
	assert.Equal(t, "nil region", err.Error())
}

func TestStructuredErrorMatchesSentinel(t *testing.T) {
	cases := []struct {
		code     api.ErrorCode
		sentinel error
	}{
		{api.ErrCodeInvalidArgument, api.ErrNilArgument},
		{api.ErrCodeInconsistentOrder, api.ErrInconsistentOrder},
		{api.ErrCodeOverflow, api.ErrLengthOverflow},
		{api.ErrCodeNegativeLength, api.ErrNegativeLength},
		{api.ErrCodeReadOnly, api.ErrReadOnly},
	}
	for _, c := range cases {
		assert.True(t, errors.Is(api.NewError(c.code, "x"), c.sentinel), "code %d", c.code)
	}
}
