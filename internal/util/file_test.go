package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateVideoExt(t *testing.T) {
	assert.NoError(t, ValidateVideoExt("clip.mp4"))
	assert.NoError(t, ValidateVideoExt("CLIP.MOV"))
	assert.NoError(t, ValidateVideoExt("old.avi"))

	assert.ErrorIs(t, ValidateVideoExt("movie.mkv"), ErrInvalidVideoType)
	assert.ErrorIs(t, ValidateVideoExt("script.sh"), ErrInvalidVideoType)
	assert.ErrorIs(t, ValidateVideoExt("noext"), ErrInvalidVideoType)
}

func TestValidateMimeTypePNG(t *testing.T) {
	// PNG 魔数
	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)

	mimeType, err := ValidateMimeType(bytes.NewReader(png), []string{"image/"})
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)

	_, err = ValidateMimeType(bytes.NewReader(png), []string{"video/"})
	assert.Error(t, err)
}

func TestMimeTypeHelpers(t *testing.T) {
	assert.True(t, IsImage("image/png"))
	assert.False(t, IsImage("video/mp4"))

	assert.True(t, IsVideo("video/mp4"))
	assert.True(t, IsVideo("application/x-mpegURL"))
	assert.False(t, IsVideo("image/jpeg"))
}
