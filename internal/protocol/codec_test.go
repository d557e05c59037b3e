package protocol

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/vovakirdan/gridwalk/internal/core"
)

func TestReadMoves(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected core.MoveSet
	}{
		{"empty frame", []byte{0, 0, 0, 0}, core.NewMoveSet()},
		{"up left", []byte{0, 0, 0, 2, 1, 3}, core.NewMoveSet(core.MoveUp, core.MoveLeft)},
		{"duplicates", []byte{0, 0, 0, 3, 4, 4, 4}, core.NewMoveSet(core.MoveRight)},
		{"unknown keys", []byte{0, 0, 0, 3, 0, 7, 2}, core.NewMoveSet(core.MoveDown)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tc.input))
			got, err := r.ReadMoves()
			if err != nil {
				t.Fatalf("ReadMoves() failed: %v", err)
			}
			if got != tc.expected {
				t.Errorf("ReadMoves() = %v, expected %v", got.Moves(), tc.expected.Moves())
			}
		})
	}
}

func TestReadMovesSequential(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0, 0, 0, 0})
	buf.Write([]byte{0, 0, 0, 1, 4})
	buf.Write([]byte{0, 0, 0, 0})

	r := NewReader(&buf)
	expected := []core.MoveSet{
		core.NewMoveSet(),
		core.NewMoveSet(core.MoveRight),
		core.NewMoveSet(),
	}
	for i, want := range expected {
		got, err := r.ReadMoves()
		if err != nil {
			t.Fatalf("frame %d: ReadMoves() failed: %v", i, err)
		}
		if got != want {
			t.Errorf("frame %d: got %v, expected %v", i, got.Moves(), want.Moves())
		}
	}

	if _, err := r.ReadMoves(); !IsFramingError(err) {
		t.Errorf("Reading past the end should be a framing error, got %v", err)
	}
}

func TestReadKeysFramingErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		part  string
		got   int
	}{
		{"closed stream", nil, "header", 0},
		{"partial header", []byte{0, 0}, "header", 2},
		{"missing keys", []byte{0, 0, 0, 3}, "keys", 0},
		{"short keys", []byte{0, 0, 0, 3, 1, 2}, "keys", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tc.input))
			_, err := r.ReadKeys()
			if err == nil {
				t.Fatal("ReadKeys() should fail")
			}

			var fe *FramingError
			if !errors.As(err, &fe) {
				t.Fatalf("Expected *FramingError, got %T: %v", err, err)
			}
			if fe.Part != tc.part {
				t.Errorf("Part = %q, expected %q", fe.Part, tc.part)
			}
			if fe.Got != tc.got {
				t.Errorf("Got = %d, expected %d", fe.Got, tc.got)
			}
			if !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Errorf("Expected to wrap io.ErrUnexpectedEOF, got %v", err)
			}
		})
	}
}

func TestReadKeysLargeFrame(t *testing.T) {
	keys := bytes.Repeat([]byte{1, 2, 3, 4, 9}, 2000)

	var buf bytes.Buffer
	if err := WriteKeys(&buf, keys); err != nil {
		t.Fatalf("WriteKeys() failed: %v", err)
	}

	r := NewReader(&buf)
	got, err := r.ReadKeys()
	if err != nil {
		t.Fatalf("ReadKeys() failed: %v", err)
	}
	if !bytes.Equal(got, keys) {
		t.Errorf("ReadKeys() returned %d bytes, expected %d", len(got), len(keys))
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("pipe closed")
}

func TestWriteFrame(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	g := core.NewGrid()
	g.Set(core.Pos(0, 0), 1)
	g.Set(core.Pos(63, 63), 2)

	if err := w.WriteFrame(&g); err != nil {
		t.Fatalf("WriteFrame() failed: %v", err)
	}
	if buf.Len() != core.FrameSize {
		t.Fatalf("Frame size = %d, expected %d", buf.Len(), core.FrameSize)
	}

	// Second frame is flushed independently
	if err := w.WriteFrame(&g); err != nil {
		t.Fatalf("WriteFrame() failed: %v", err)
	}
	if buf.Len() != 2*core.FrameSize {
		t.Fatalf("After two frames size = %d, expected %d", buf.Len(), 2*core.FrameSize)
	}

	frame, err := ReadFrame(&buf)
	if err != nil {
		t.Fatalf("ReadFrame() failed: %v", err)
	}
	if frame[0] != 1 || frame[core.FrameSize-1] != 2 {
		t.Errorf("Frame content mismatch: first=%d last=%d", frame[0], frame[core.FrameSize-1])
	}
}

func TestWriteFrameError(t *testing.T) {
	w := NewWriter(failingWriter{})
	g := core.NewGrid()
	if err := w.WriteFrame(&g); err == nil {
		t.Error("WriteFrame() should fail on a broken stream")
	}
}

func TestWriteMoves(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMoves(&buf, core.MoveUp, core.MoveLeft); err != nil {
		t.Fatalf("WriteMoves() failed: %v", err)
	}

	expected := []byte{0, 0, 0, 2, 1, 3}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Errorf("WriteMoves() = %v, expected %v", buf.Bytes(), expected)
	}
}

func TestReadFrameShort(t *testing.T) {
	_, err := ReadFrame(bytes.NewReader(make([]byte, 100)))
	if !IsFramingError(err) {
		t.Errorf("Short frame should be a framing error, got %v", err)
	}
}

func TestOutcome(t *testing.T) {
	lose := make([]byte, core.FrameSize)
	copy(lose, "LOSE")
	won := make([]byte, core.FrameSize)
	copy(won, "WON")

	if Outcome(lose) != core.OutcomeLost {
		t.Error("LOSE frame should classify as lost")
	}
	if Outcome(won) != core.OutcomeWon {
		t.Error("WON frame should classify as won")
	}
	if Outcome(make([]byte, core.FrameSize)) != core.OutcomeRunning {
		t.Error("Zero frame should classify as running")
	}
}
