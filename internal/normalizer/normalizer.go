// Package normalizer validates raster images and reduces them to a bounded,
// canonically encoded artifact ready for submission.
package normalizer

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"

	"github.com/permapress/permapress-backend/internal/fault"
	"github.com/permapress/permapress-backend/internal/model"
)

// CanonicalFormat is the single compressed encoding all artifacts are
// normalized to before submission.
const CanonicalFormat = "jpeg"

// CanonicalContentType is the content-type tag attached to every submission.
const CanonicalContentType = "image/jpeg"

var videoExtensions = map[string]struct{}{
	"mp4": {}, "mov": {}, "avi": {}, "mkv": {}, "webm": {},
	"m4v": {}, "mpg": {}, "mpeg": {}, "flv": {}, "wmv": {}, "3gp": {},
}

var stillExtensions = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "webp": {},
	"bmp": {}, "tif": {}, "tiff": {},
}

// Options bound and tune the normalization.
type Options struct {
	Quality   int
	MaxWidth  int
	MaxHeight int
}

// DefaultOptions returns the normalization defaults.
func DefaultOptions() Options {
	return Options{
		Quality:   90,
		MaxWidth:  1920,
		MaxHeight: 1920,
	}
}

// Normalizer turns source images into processed artifacts. Artifacts are
// written to the scratch directory; ownership transfers to the caller on
// return.
type Normalizer struct {
	scratchDir string
	logger     *zap.Logger
}

// New constructs a normalizer writing artifacts under scratchDir.
func New(scratchDir string, logger *zap.Logger) (*Normalizer, error) {
	if scratchDir == "" {
		scratchDir = os.TempDir()
	}
	if err := os.MkdirAll(scratchDir, 0o755); err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	return &Normalizer{scratchDir: scratchDir, logger: logger}, nil
}

// Normalize validates the source image, fits it within the configured bounds
// and re-encodes it to the canonical format. Inputs already canonical and
// within bounds are returned unchanged with a zero reduction.
func (n *Normalizer) Normalize(ctx context.Context, path string, opts Options) (*model.ProcessedArtifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, fault.New(fault.KindCancelled, err)
	}

	asset, err := n.inspect(path)
	if err != nil {
		return nil, err
	}

	withinBounds := asset.Width <= opts.MaxWidth && asset.Height <= opts.MaxHeight
	if asset.Format == CanonicalFormat && withinBounds {
		n.logger.Debug("input already canonical and within bounds",
			zap.String("path", path),
			zap.Int("width", asset.Width),
			zap.Int("height", asset.Height))
		return &model.ProcessedArtifact{
			Path:             asset.Path,
			Bytes:            asset.Bytes,
			Width:            asset.Width,
			Height:           asset.Height,
			Format:           CanonicalFormat,
			ReductionPercent: 0,
		}, nil
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fault.Errorf(fault.KindProcessingFailed, "decode %s: %w", path, err)
	}

	if !withinBounds {
		img = imaging.Fit(img, opts.MaxWidth, opts.MaxHeight, imaging.Lanczos)
	}

	artifact, err := n.encode(img, opts.Quality)
	if err != nil {
		return nil, err
	}

	artifact.ReductionPercent = reductionPercent(asset.Bytes, artifact.Bytes)
	n.logger.Info("normalized image",
		zap.String("source", path),
		zap.Int64("original_bytes", asset.Bytes),
		zap.Int64("processed_bytes", artifact.Bytes),
		zap.Float64("reduction_percent", artifact.ReductionPercent))
	return artifact, nil
}

// inspect validates the path and extension, rejects animated inputs and
// reads the pixel dimensions.
func (n *Normalizer) inspect(path string) (*model.ImageAsset, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if _, ok := videoExtensions[ext]; ok {
		return nil, fault.Errorf(fault.KindUnsupportedMedia, "video format %q", ext)
	}
	if _, ok := stillExtensions[ext]; !ok {
		return nil, fault.Errorf(fault.KindUnsupportedMedia, "unknown extension %q", ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fault.Errorf(fault.KindInvalidInput, "stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		return nil, fault.Errorf(fault.KindInvalidInput, "%s is empty", path)
	}

	animated, err := probeAnimation(path, ext)
	if err != nil {
		return nil, fault.Errorf(fault.KindProcessingFailed, "probe %s: %w", path, err)
	}
	if animated {
		return nil, fault.Errorf(fault.KindUnsupportedMedia, "animated multi-frame image %q", ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fault.Errorf(fault.KindInvalidInput, "open %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	cfg, format, err := image.DecodeConfig(file)
	if err != nil {
		return nil, fault.Errorf(fault.KindProcessingFailed, "decode config %s: %w", path, err)
	}
	if format == "jpg" {
		format = "jpeg"
	}

	return &model.ImageAsset{
		Path:   path,
		Bytes:  info.Size(),
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
	}, nil
}

// encode writes the image as a canonical scratch artifact. Partial files are
// removed before an error propagates.
func (n *Normalizer) encode(img image.Image, quality int) (*model.ProcessedArtifact, error) {
	out, err := os.CreateTemp(n.scratchDir, "permapress-*.jpg")
	if err != nil {
		return nil, fault.Errorf(fault.KindProcessingFailed, "create scratch file: %w", err)
	}
	outPath := out.Name()
	if err := out.Close(); err != nil {
		_ = os.Remove(outPath)
		return nil, fault.Errorf(fault.KindProcessingFailed, "close scratch file: %w", err)
	}

	if err := imaging.Save(img, outPath, imaging.JPEGQuality(quality)); err != nil {
		_ = os.Remove(outPath)
		return nil, fault.Errorf(fault.KindProcessingFailed, "encode artifact: %w", err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		_ = os.Remove(outPath)
		return nil, fault.Errorf(fault.KindProcessingFailed, "stat artifact: %w", err)
	}

	bounds := img.Bounds()
	return &model.ProcessedArtifact{
		Path:   outPath,
		Bytes:  info.Size(),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: CanonicalFormat,
	}, nil
}

func reductionPercent(original, processed int64) float64 {
	if original == 0 {
		return 0
	}
	return float64(original-processed) / float64(original) * 100
}
