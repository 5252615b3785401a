package twir_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/twir"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := twir.Errorf(twir.EMISSINGSECTION, "section %q not found", "news")

	assert.Equal(t, twir.EMISSINGSECTION, twir.ErrorCode(err))
	assert.Equal(t, "section \"news\" not found", twir.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("parse issue: %w", twir.Errorf(twir.EINVALIDID, "bad id"))

	assert.Equal(t, twir.EINVALIDID, twir.ErrorCode(err))
	assert.Equal(t, "bad id", twir.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, twir.EINTERNAL, twir.ErrorCode(err))
	assert.Equal(t, "Internal error", twir.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, twir.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, twir.ErrorMessage(nil))
}
