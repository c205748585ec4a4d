package scrapesuite_test

import (
	"errors"
	"fmt"
	"testing"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := scrapesuite.Errorf(scrapesuite.ENOTFOUND, "job not found")
		assert.Equal(t, scrapesuite.ENOTFOUND, scrapesuite.ErrorCode(err))
		assert.Equal(t, "job not found", scrapesuite.ErrorMessage(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		inner := scrapesuite.Errorf(scrapesuite.EINVALID, "bad selector")
		err := fmt.Errorf("analyze: %w", inner)
		assert.Equal(t, scrapesuite.EINVALID, scrapesuite.ErrorCode(err))
		assert.Equal(t, "bad selector", scrapesuite.ErrorMessage(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		err := errors.New("boom")
		assert.Equal(t, scrapesuite.EINTERNAL, scrapesuite.ErrorCode(err))
		assert.Equal(t, "Internal error.", scrapesuite.ErrorMessage(err))
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", scrapesuite.ErrorCode(nil))
		assert.Equal(t, "", scrapesuite.ErrorMessage(nil))
	})
}
