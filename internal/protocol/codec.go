// Package protocol implements the binary framing spoken with the host over a
// pair of byte streams.
//
// Input frames carry the keys pressed during one tick:
//
//	[4 bytes big-endian uint32 n][n key bytes]
//
// Output frames are the raw board raster, ScreenSize*ScreenSize bytes in
// row-major order, with no header or separators.
package protocol

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/vovakirdan/gridwalk/internal/core"
)

const headerSize = 4

// FramingError reports an input stream that ended or failed before a frame
// was fully read.
type FramingError struct {
	Part string // "header" or "keys"
	Want int    // bytes declared or required
	Got  int    // bytes actually read
	Err  error
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("protocol: short %s: read %d of %d bytes: %v", e.Part, e.Got, e.Want, e.Err)
}

func (e *FramingError) Unwrap() error {
	return e.Err
}

// IsFramingError returns true if err is or wraps a *FramingError.
func IsFramingError(err error) bool {
	var fe *FramingError
	return errors.As(err, &fe)
}

// Reader decodes input frames.
type Reader struct {
	r   *bufio.Reader
	hdr [headerSize]byte
	buf []byte
}

// NewReader wraps r in a frame decoder.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadKeys reads one input frame and returns its raw key bytes.
// The returned slice is only valid until the next call.
func (d *Reader) ReadKeys() ([]byte, error) {
	if n, err := io.ReadFull(d.r, d.hdr[:]); err != nil {
		return nil, &FramingError{Part: "header", Want: headerSize, Got: n, Err: eofAsUnexpected(err)}
	}

	size := binary.BigEndian.Uint32(d.hdr[:])
	if size == 0 {
		return d.buf[:0], nil
	}

	// Grow as bytes arrive; n comes from the peer and may be bogus.
	d.buf = d.buf[:0]
	var chunk [4096]byte
	remaining := int64(size)
	for remaining > 0 {
		want := int64(len(chunk))
		if remaining < want {
			want = remaining
		}
		n, err := io.ReadFull(d.r, chunk[:want])
		d.buf = append(d.buf, chunk[:n]...)
		remaining -= int64(n)
		if err != nil {
			return nil, &FramingError{Part: "keys", Want: int(size), Got: len(d.buf), Err: eofAsUnexpected(err)}
		}
	}
	return d.buf, nil
}

// ReadMoves reads one input frame and collapses it to a MoveSet.
// Unrecognized key bytes are dropped.
func (d *Reader) ReadMoves() (core.MoveSet, error) {
	keys, err := d.ReadKeys()
	if err != nil {
		return core.MoveSet{}, err
	}
	return core.DecodeMoves(keys), nil
}

func eofAsUnexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Writer encodes output frames.
type Writer struct {
	w   *bufio.Writer
	buf []byte
}

// NewWriter wraps w in a frame encoder.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:   bufio.NewWriterSize(w, core.FrameSize),
		buf: make([]byte, 0, core.FrameSize),
	}
}

// WriteFrame writes the grid as one raster and flushes it to the peer.
func (e *Writer) WriteFrame(g *core.Grid) error {
	e.buf = g.AppendBytes(e.buf[:0])
	if _, err := e.w.Write(e.buf); err != nil {
		return fmt.Errorf("protocol: writing frame: %w", err)
	}
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("protocol: flushing frame: %w", err)
	}
	return nil
}

// WriteKeys encodes one input frame carrying keys.
// This is the host side of the protocol.
func WriteKeys(w io.Writer, keys []byte) error {
	frame := make([]byte, headerSize+len(keys))
	binary.BigEndian.PutUint32(frame[:headerSize], uint32(len(keys)))
	copy(frame[headerSize:], keys)
	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("protocol: writing keys: %w", err)
	}
	return nil
}

// WriteMoves encodes one input frame carrying the given moves.
func WriteMoves(w io.Writer, moves ...core.Move) error {
	keys := make([]byte, len(moves))
	for i, m := range moves {
		keys[i] = byte(m)
	}
	return WriteKeys(w, keys)
}

// ReadFrame reads exactly one output raster.
// This is the host side of the protocol.
func ReadFrame(r io.Reader) ([]byte, error) {
	frame := make([]byte, core.FrameSize)
	if n, err := io.ReadFull(r, frame); err != nil {
		return nil, &FramingError{Part: "frame", Want: core.FrameSize, Got: n, Err: eofAsUnexpected(err)}
	}
	return frame, nil
}

// Outcome classifies a raster by the sentinel at the start of row 0.
// Normal frames can in principle carry the same leading bytes, so hosts
// should only trust this on the frame after which the engine stops.
func Outcome(frame []byte) core.Outcome {
	switch {
	case bytes.HasPrefix(frame, core.SentinelLose):
		return core.OutcomeLost
	case bytes.HasPrefix(frame, core.SentinelWon):
		return core.OutcomeWon
	default:
		return core.OutcomeRunning
	}
}
