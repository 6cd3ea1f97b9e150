package testutil

import (
	"errors"
	"testing"
	"time"
)

func TestMockWriterBasics(t *testing.T) {
	mw := NewMockWriter()

	n, err := mw.Write([]byte("hello"))
	AssertNoError(t, err)
	AssertEqual(t, n, 5)
	AssertEqual(t, mw.String(), "hello")
	AssertEqual(t, mw.WriteCount(), 1)
}

func TestMockWriterErrorOnNth(t *testing.T) {
	mw := NewMockWriter()
	mw.SetErrorOnNth(2)

	_, err := mw.Write([]byte("a"))
	AssertNoError(t, err)

	_, err = mw.Write([]byte("b"))
	AssertError(t, err)

	// Only the successful write lands in the buffer.
	AssertEqual(t, mw.String(), "a")
}

func TestMockWriterAlwaysError(t *testing.T) {
	mw := NewMockWriter()
	want := errors.New("disk full")
	mw.SetAlwaysError(want)

	_, err := mw.Write([]byte("x"))
	if !errors.Is(err, want) {
		t.Fatalf("got %v, want %v", err, want)
	}
	if err := mw.Flush(); !errors.Is(err, want) {
		t.Fatalf("Flush() = %v, want %v", err, want)
	}
}

func TestMockWriterFlushCount(t *testing.T) {
	mw := NewMockWriter()
	AssertEqual(t, mw.FlushCount(), 0)
	AssertNoError(t, mw.Flush())
	AssertEqual(t, mw.FlushCount(), 1)
}

func TestMockWriterDelay(t *testing.T) {
	mw := NewMockWriter()
	mw.SetWriteDelay(10 * time.Millisecond)

	start := time.Now()
	_, err := mw.Write([]byte("slow"))
	AssertNoError(t, err)

	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Fatalf("write returned after %v, want at least 10ms", elapsed)
	}
}

func TestMockWriterReset(t *testing.T) {
	mw := NewMockWriter()
	_, _ = mw.Write([]byte("data"))
	_ = mw.Flush()
	mw.SetErrorOnNth(1)

	mw.Reset()

	AssertEqual(t, mw.Len(), 0)
	AssertEqual(t, mw.WriteCount(), 0)
	AssertEqual(t, mw.FlushCount(), 0)

	_, err := mw.Write([]byte("ok"))
	AssertNoError(t, err)
}
