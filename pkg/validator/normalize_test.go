package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peepsched/schedval/pkg/validator"
)

func TestNormalizeEmailKey(t *testing.T) {
	t.Run("lowercases and trims", func(t *testing.T) {
		assert.Equal(t, "jane@example.com", validator.NormalizeEmailKey(" Jane@Example.COM "))
	})

	t.Run("strips gmail local-part dots", func(t *testing.T) {
		assert.Equal(t, "janesmith@gmail.com", validator.NormalizeEmailKey("Jane.Smith@gmail.com"))
		assert.Equal(t, "janesmith@gmail.com", validator.NormalizeEmailKey("j.a.n.e.smith@GMAIL.com"))
	})

	t.Run("keeps dots for other domains", func(t *testing.T) {
		assert.Equal(t, "jane.smith@example.com", validator.NormalizeEmailKey("Jane.Smith@example.com"))
	})
}

func TestNormalizeNameKey(t *testing.T) {
	assert.Equal(t, validator.NormalizeNameKey("Jane Smith"), validator.NormalizeNameKey("JANE SMITH"))
	assert.Equal(t, validator.NormalizeNameKey("  Jane Smith"), validator.NormalizeNameKey("Jane Smith"))
	assert.NotEqual(t, validator.NormalizeNameKey("Jane Smith"), validator.NormalizeNameKey("Jane Smyth"))
}
