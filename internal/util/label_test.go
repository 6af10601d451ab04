package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePostIDLabel(t *testing.T) {
	id, err := ParsePostIDLabel("12: 今天天气不错...")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)
}

func TestParsePostIDLabelWithSpaces(t *testing.T) {
	id, err := ParsePostIDLabel("  7 : preview")
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
}

func TestParsePostIDLabelMalformed(t *testing.T) {
	cases := []string{
		"",
		"no colon here",
		": missing id",
		"abc: not a number",
		"12.5: float id",
	}
	for _, label := range cases {
		_, err := ParsePostIDLabel(label)
		assert.Error(t, err, "label %q", label)
	}
}
