package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NativeSize(t *testing.T) {
	img, err := Load(Bytes(), 0)
	require.NoError(t, err)

	assert.Equal(t, 960, img.Bounds().Dx())
	assert.Equal(t, 540, img.Bounds().Dy())
}

func TestLoad_ShrinksToMaxWidth(t *testing.T) {
	img, err := Load(Bytes(), 480)
	require.NoError(t, err)

	assert.Equal(t, 480, img.Bounds().Dx())
	assert.Equal(t, 270, img.Bounds().Dy())
}

func TestLoad_NeverUpscales(t *testing.T) {
	img, err := Load(Bytes(), 4096)
	require.NoError(t, err)
	assert.Equal(t, 960, img.Bounds().Dx())
}

func TestLoad_RejectsGarbage(t *testing.T) {
	_, err := Load([]byte("definitely not an image"), 0)
	assert.Error(t, err)
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.NotNil(t, MustLoad(480))
	})
}
