// Package assets loads the read-only images, font and page template shared by all requests.
package assets

import (
	"Suivi/config"
	"Suivi/pkg/imaging"
	"Suivi/pkg/log"
	"Suivi/pkg/oss"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

const (
	ossScheme   = "oss://"
	loadTimeout = 30 * time.Second
)

//go:embed landing.html
var defaultTemplate string

// Bundle is loaded once at startup and never mutated afterwards.
type Bundle struct {
	Frame    image.Image
	Logo     image.Image
	Text     *imaging.TextRenderer
	Template string
}

var ErrNoBucket = errors.New("oss path used but no oss bucket configured")

// Load reads every configured asset concurrently. Empty paths leave the asset unset,
// except the template which falls back to the embedded landing page.
func Load(cfg *config.Config, bucket *oss.Bucket) (*Bundle, error) {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	b := &Bundle{Template: defaultTemplate}
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		img, err := loadImage(ctx, bucket, cfg.Assets.FramePath)
		if err != nil {
			return fmt.Errorf("frame: %w", err)
		}
		b.Frame = img
		return nil
	})
	eg.Go(func() error {
		img, err := loadImage(ctx, bucket, cfg.Assets.LogoPath)
		if err != nil {
			return fmt.Errorf("logo: %w", err)
		}
		b.Logo = img
		return nil
	})
	eg.Go(func() error {
		if cfg.Assets.TemplatePath == "" {
			return nil
		}
		raw, err := readAll(ctx, bucket, cfg.Assets.TemplatePath)
		if err != nil {
			return fmt.Errorf("template: %w", err)
		}
		b.Template = string(raw)
		return nil
	})
	eg.Go(func() error {
		text, err := imaging.NewTextRenderer(nil)
		if err != nil {
			return err
		}
		b.Text = text
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	log.L.Info("assets loaded",
		zap.Bool("frame", b.Frame != nil),
		zap.Bool("logo", b.Logo != nil),
		zap.Bool("custom_template", cfg.Assets.TemplatePath != ""),
	)
	return b, nil
}

func DefaultTemplate() string {
	return defaultTemplate
}

func loadImage(ctx context.Context, bucket *oss.Bucket, path string) (image.Image, error) {
	if path == "" {
		return nil, nil
	}
	rc, err := open(ctx, bucket, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, format, err := image.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	log.L.Debug("image asset decoded", zap.String("path", path), zap.String("format", format),
		zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
	return img, nil
}

func readAll(ctx context.Context, bucket *oss.Bucket, path string) ([]byte, error) {
	rc, err := open(ctx, bucket, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func open(ctx context.Context, bucket *oss.Bucket, path string) (io.ReadCloser, error) {
	if key, ok := strings.CutPrefix(path, ossScheme); ok {
		if bucket == nil {
			return nil, ErrNoBucket
		}
		return bucket.Open(ctx, key)
	}
	return os.Open(path)
}
