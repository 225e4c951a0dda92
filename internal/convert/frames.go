package convert

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"linux-confetti/internal/utils"

	"golang.org/x/image/draw"
)

// FrameWriter consumes rendered frames in order.
type FrameWriter interface {
	WriteFrame(img image.Image) error
	Close() error
}

// DefaultEncoders bounds concurrent PNG encodes.
const DefaultEncoders = 10

// OpenFrameWriter picks a writer from the output path: "*.lz4" writes one
// compressed raw stream, anything else is a directory of numbered PNGs.
func OpenFrameWriter(path string, encoders int) (FrameWriter, error) {
	if strings.EqualFold(filepath.Ext(path), ".lz4") {
		return CreateLZ4Stream(path)
	}
	return NewPNGSequence(path, encoders)
}

// CloneNRGBA copies img into a fresh NRGBA image with a zero origin.
func CloneNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*image.NRGBA); ok {
		// Row copy keeps straight alpha exact.
		for y := 0; y < b.Dy(); y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:], src.Pix[i:i+4*b.Dx()])
		}
		return dst
	}
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// PNGSequence writes frame_00000.png, frame_00001.png, ... into a directory,
// encoding several frames in parallel.
type PNGSequence struct {
	dir  string
	next int

	wg  sync.WaitGroup
	sem chan struct{}

	written atomic.Int32
	errOnce sync.Once
	err     error
}

func NewPNGSequence(dir string, encoders int) (*PNGSequence, error) {
	if encoders <= 0 {
		encoders = DefaultEncoders
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create frame directory: %w", err)
	}
	utils.Info("Writing PNG frames to %s", dir)
	return &PNGSequence{
		dir: dir,
		sem: make(chan struct{}, encoders),
	}, nil
}

// FramePath returns the file name used for frame i.
func (s *PNGSequence) FramePath(i int) string {
	return filepath.Join(s.dir, fmt.Sprintf("frame_%05d.png", i))
}

// WriteFrame copies img and encodes it in the background. The caller may
// reuse img as soon as WriteFrame returns.
func (s *PNGSequence) WriteFrame(img image.Image) error {
	frame := CloneNRGBA(img)
	path := s.FramePath(s.next)
	s.next++

	s.wg.Add(1)
	s.sem <- struct{}{}
	go func() {
		defer s.wg.Done()
		defer func() { <-s.sem }()
		if err := writePNG(path, frame); err != nil {
			utils.Error("Failed to write %s: %v", path, err)
			s.errOnce.Do(func() { s.err = err })
			return
		}
		s.written.Add(1)
	}()
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Close waits for pending encodes and returns the first failure.
func (s *PNGSequence) Close() error {
	s.wg.Wait()
	utils.Info("PNG sequence finished. Wrote %d frames.", s.written.Load())
	return s.err
}

// Written returns the number of frames fully encoded so far.
func (s *PNGSequence) Written() int { return int(s.written.Load()) }
