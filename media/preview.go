package media

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"io"
	"os"
	"time"

	"sitekit/internal/logging"
	"sitekit/internal/metrics"

	// Image format decoders
	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // WebP format support
)

// DefaultPreviewQuality is the JPEG quality used when none is given.
const DefaultPreviewQuality = 80

// Preview decodes an image from r, fits it within maxWidth x maxHeight
// preserving aspect ratio, and returns a JPEG-encoded preview. A quality
// of 0 uses DefaultPreviewQuality. Auto-orientation from EXIF is applied
// during decode.
func Preview(r io.Reader, maxWidth, maxHeight, quality int) ([]byte, error) {
	start := time.Now()

	data, err := preview(r, maxWidth, maxHeight, quality)
	if err != nil {
		metrics.PreviewGenerationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.PreviewGenerationsTotal.WithLabelValues("success").Inc()
	metrics.PreviewGenerationDuration.Observe(time.Since(start).Seconds())
	return data, nil
}

func preview(r io.Reader, maxWidth, maxHeight, quality int) ([]byte, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("invalid preview bounds %dx%d", maxWidth, maxHeight)
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultPreviewQuality
	}

	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode source image: %w", err)
	}

	thumb := imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	logging.Debug("Preview generated: %dx%d -> %dx%d, %d bytes",
		img.Bounds().Dx(), img.Bounds().Dy(),
		thumb.Bounds().Dx(), thumb.Bounds().Dy(), buf.Len())

	return buf.Bytes(), nil
}

// PreviewFile generates a JPEG preview for an image file on disk. When
// libvips has been initialized via InitVips, decoding and shrinking happen
// in one pass inside vips; otherwise the file is decoded in-process.
func PreviewFile(path string, maxWidth, maxHeight, quality int) ([]byte, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("invalid preview bounds %dx%d", maxWidth, maxHeight)
	}

	if IsVipsAvailable() {
		data, err := previewWithVips(path, maxWidth, maxHeight, quality)
		if err == nil {
			metrics.PreviewGenerationsTotal.WithLabelValues("success").Inc()
			return data, nil
		}
		logging.Debug("vips preview failed for %s: %v, falling back to in-process decode", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		metrics.PreviewGenerationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.Warn("failed to close source file %s: %v", path, err)
		}
	}()

	return Preview(file, maxWidth, maxHeight, quality)
}
