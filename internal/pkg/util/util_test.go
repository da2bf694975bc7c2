package util

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 7 {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestParsePage(t *testing.T) {
	cases := []struct {
		raw  string
		page int
		ok   bool
	}{
		{"", 1, true},
		{"1", 1, true},
		{"7", 7, true},
		{"0", 0, false},
		{"-2", 0, false},
		{"abc", 0, false},
		{"2.5", 0, false},
	}
	for _, c := range cases {
		page, ok := ParsePage(c.raw)
		assert.Equal(t, c.ok, ok, c.raw)
		assert.Equal(t, c.page, page, c.raw)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, PageSize))
	assert.Equal(t, 1, TotalPages(10, PageSize))
	assert.Equal(t, 2, TotalPages(11, PageSize))
	assert.Equal(t, 3, TotalPages(25, PageSize))
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("15")
	assert.True(t, ok)
	assert.Equal(t, uint64(15), id)

	_, ok = ParseID("0")
	assert.False(t, ok)
	_, ok = ParseID("x")
	assert.False(t, ok)
}

type sampleDTO struct {
	Title string `json:"title" validate:"min=1,max=5"`
	Slug  string `json:"slug" validate:"slug"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestValidateDTOFieldMessages(t *testing.T) {
	err := ValidateDTO(&sampleDTO{Title: "too long title", Slug: "bad slug!", Email: "nope"})
	require.Error(t, err)

	var vErrs validator.ValidationErrors
	require.ErrorAs(t, err, &vErrs)

	fields := FieldMessages(vErrs)
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "slug")
	assert.Contains(t, fields, "email")

	assert.NoError(t, ValidateDTO(&sampleDTO{Title: "ok", Slug: "travel_2024-x"}))
}

func TestNormalizeImageKeepsSmallImage(t *testing.T) {
	out, err := NormalizeImage(pngBytes(t, 40, 30), 1920)
	require.NoError(t, err)
	assert.Equal(t, "image/png", out.ContentType)
	assert.Equal(t, ".png", out.Ext)
	assert.Equal(t, 40, out.Width)
	assert.Equal(t, 30, out.Height)
	assert.NotEmpty(t, out.Data)
}

func TestNormalizeImageBoundsLongSide(t *testing.T) {
	out, err := NormalizeImage(pngBytes(t, 400, 100), 200)
	require.NoError(t, err)
	assert.Equal(t, 200, out.Width)
	assert.Equal(t, 50, out.Height)
}

func TestNormalizeImageRejectsNonImage(t *testing.T) {
	_, err := NormalizeImage([]byte("definitely not an image"), 1920)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}
