package convert

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"linux-confetti/internal/utils"

	"github.com/pierrec/lz4/v4"
)

// Stream layout, LZ4 frame compressed:
//
//	header: uint32 length + magic string
//	frame:  uint32 width, uint32 height, width*height*4 bytes of NRGBA
//
// All integers are little endian.
const streamMagic = "CONFETTI-RGBA-1"

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader, max uint32) (string, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return "", err
	}
	if size > max {
		return "", fmt.Errorf("string length %d exceeds %d", size, max)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// LZ4Stream writes raw frames into a single LZ4 compressed stream.
type LZ4Stream struct {
	zw     *lz4.Writer
	dst    io.Closer
	frames int
}

// CreateLZ4Stream creates path and writes the stream header.
func CreateLZ4Stream(path string) (*LZ4Stream, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create frame stream: %w", err)
	}
	s, err := NewLZ4Stream(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	s.dst = f
	utils.Info("Writing LZ4 frame stream to %s", path)
	return s, nil
}

// NewLZ4Stream writes the stream header to w. Close does not close w.
func NewLZ4Stream(w io.Writer) (*LZ4Stream, error) {
	zw := lz4.NewWriter(w)
	if err := writeString(zw, streamMagic); err != nil {
		return nil, fmt.Errorf("failed to write stream header: %w", err)
	}
	return &LZ4Stream{zw: zw}, nil
}

func (s *LZ4Stream) WriteFrame(img image.Image) error {
	frame, ok := img.(*image.NRGBA)
	if !ok || frame.Rect.Min != (image.Point{}) || frame.Stride != 4*frame.Rect.Dx() {
		frame = CloneNRGBA(img)
	}
	size := [2]uint32{uint32(frame.Rect.Dx()), uint32(frame.Rect.Dy())}
	if err := binary.Write(s.zw, binary.LittleEndian, size); err != nil {
		return fmt.Errorf("failed to write frame %d header: %w", s.frames, err)
	}
	if _, err := s.zw.Write(frame.Pix[:4*frame.Rect.Dx()*frame.Rect.Dy()]); err != nil {
		return fmt.Errorf("failed to write frame %d: %w", s.frames, err)
	}
	s.frames++
	return nil
}

// Frames returns the number of frames written.
func (s *LZ4Stream) Frames() int { return s.frames }

func (s *LZ4Stream) Close() error {
	err := s.zw.Close()
	if s.dst != nil {
		if cerr := s.dst.Close(); err == nil {
			err = cerr
		}
	}
	utils.Info("LZ4 frame stream finished. Wrote %d frames.", s.frames)
	return err
}

// LZ4FrameReader decodes a stream written by LZ4Stream.
type LZ4FrameReader struct {
	zr *lz4.Reader
}

// NewLZ4FrameReader checks the stream header.
func NewLZ4FrameReader(r io.Reader) (*LZ4FrameReader, error) {
	zr := lz4.NewReader(r)
	magic, err := readString(zr, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to read stream header: %w", err)
	}
	if magic != streamMagic {
		return nil, fmt.Errorf("unknown frame stream %q", magic)
	}
	return &LZ4FrameReader{zr: zr}, nil
}

// Next returns the next frame or io.EOF after the last one.
func (r *LZ4FrameReader) Next() (*image.NRGBA, error) {
	var size [2]uint32
	if err := binary.Read(r.zr, binary.LittleEndian, &size); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read frame header: %w", err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, int(size[0]), int(size[1])))
	if _, err := io.ReadFull(r.zr, img.Pix); err != nil {
		return nil, fmt.Errorf("failed to read %dx%d frame: %w", size[0], size[1], err)
	}
	return img, nil
}
