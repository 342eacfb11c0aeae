package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantlint/grantlint/internal/document"
)

func TestValidateUnresolvableProfile(t *testing.T) {
	_, err := Validate("application.pdf", "no-such-profile", 0)
	require.Error(t, err)
}

func TestValidateMissingDocument(t *testing.T) {
	_, err := Validate("does-not-exist.pdf", "nih-application", 0)
	require.Error(t, err)

	var openErr *document.OpenError
	assert.True(t, errors.As(err, &openErr))
}
