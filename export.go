package graphic

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"time"
)

// Rasterizer is the collaborator that paints a flattened, transform-resolved
// command list into pixels for a width x height viewport. The raster
// subpackage provides a software implementation.
type Rasterizer interface {
	Rasterize(cmds []DrawCommand, width, height int) (image.Image, error)
}

// RenderToFile rasterizes a single Picture at exactly width x height pixels
// and writes it to path as a PNG. The destination file handle is held only
// for the duration of the write; on failure the partial file is removed on
// a best-effort basis.
func RenderToFile(ras Rasterizer, pic *Picture, width, height int, path string) error {
	if ras == nil || pic == nil {
		panic("graphic: nil rasterizer or picture")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidArgument, width, height)
	}

	img, err := ras.Rasterize(pic.Commands(), width, height)
	if err != nil {
		return fmt.Errorf("graphic: rasterize: %w", err)
	}

	err = writeEncoded(path, func(f *os.File) error {
		return png.Encode(f, img)
	})
	if err != nil {
		return err
	}
	Logger().Info("graphic: wrote still image", "path", path, "size", fmt.Sprintf("%dx%d", width, height))
	return nil
}

// AnimateToFile rasterizes each Picture in pics as one animation frame, in
// order, and writes the result to path as an animated GIF. frameDelay is
// the per-frame display time; repeatCount follows the GIF convention where
// 0 means loop forever. Fails with ErrInvalidArgument for an empty frame
// list, a non-positive delay, or a negative repeat count.
func AnimateToFile(ras Rasterizer, pics []*Picture, width, height int, frameDelay time.Duration, repeatCount int, path string) error {
	if ras == nil {
		panic("graphic: nil rasterizer")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidArgument, width, height)
	}
	if len(pics) == 0 {
		return fmt.Errorf("%w: no frames", ErrInvalidArgument)
	}
	if frameDelay <= 0 {
		return fmt.Errorf("%w: frame delay %v", ErrInvalidArgument, frameDelay)
	}
	if repeatCount < 0 {
		return fmt.Errorf("%w: repeat count %d", ErrInvalidArgument, repeatCount)
	}

	// GIF delays are in hundredths of a second, minimum one tick.
	delay := int(frameDelay / (10 * time.Millisecond))
	if delay < 1 {
		delay = 1
	}

	anim := &gif.GIF{LoopCount: repeatCount}
	for i, pic := range pics {
		if pic == nil {
			return fmt.Errorf("%w: nil picture at frame %d", ErrInvalidArgument, i)
		}
		img, err := ras.Rasterize(pic.Commands(), width, height)
		if err != nil {
			return fmt.Errorf("graphic: rasterize frame %d: %w", i, err)
		}
		frame := image.NewPaletted(image.Rect(0, 0, width, height), palette.Plan9)
		draw.FloydSteinberg.Draw(frame, frame.Bounds(), img, image.Point{})
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}

	err := writeEncoded(path, func(f *os.File) error {
		return gif.EncodeAll(f, anim)
	})
	if err != nil {
		return err
	}
	Logger().Info("graphic: wrote animation", "path", path, "frames", len(pics))
	return nil
}

// writeEncoded creates path, runs the encoder against it, and closes the
// file. Any failure removes the partial file (best effort) and is reported
// wrapped in ErrIO.
func writeEncoded(path string, encode func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrIO, path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		if rmErr := os.Remove(path); rmErr != nil {
			Logger().Warn("graphic: could not remove partial file", "path", path, "err", rmErr)
		}
		return fmt.Errorf("%w: encode %s: %v", ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrIO, path, err)
	}
	return nil
}
