package util

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/disintegration/imaging"
)

var ErrUnsupportedImage = errors.New("unsupported image format")

// ProcessedImage 处理后的图片
type ProcessedImage struct {
	Data        []byte
	ContentType string
	Ext         string
	Width       int
	Height      int
}

var imageFormats = map[string]struct {
	format imaging.Format
	ext    string
}{
	"image/jpeg": {imaging.JPEG, ".jpg"},
	"image/png":  {imaging.PNG, ".png"},
	"image/gif":  {imaging.GIF, ".gif"},
	"image/bmp":  {imaging.BMP, ".bmp"},
}

// NormalizeImage 按内容识别图片格式，修正方向并把长边限制在 maxSide 以内
func NormalizeImage(data []byte, maxSide int) (*ProcessedImage, error) {
	contentType := http.DetectContentType(data)
	f, ok := imageFormats[contentType]
	if !ok {
		return nil, ErrUnsupportedImage
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, ErrUnsupportedImage
	}

	bounds := img.Bounds()
	if maxSide > 0 && (bounds.Dx() > maxSide || bounds.Dy() > maxSide) {
		img = imaging.Fit(img, maxSide, maxSide, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, img, f.format, imaging.JPEGQuality(85)); err != nil {
		return nil, err
	}

	b := img.Bounds()
	return &ProcessedImage{
		Data:        buf.Bytes(),
		ContentType: contentType,
		Ext:         f.ext,
		Width:       b.Dx(),
		Height:      b.Dy(),
	}, nil
}
