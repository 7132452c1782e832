package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("s3cr3t")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("login: %w", ErrUnauthorized)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected wrapped error to match ErrUnauthorized")
	}
	if errors.Is(err, ErrUnavailable) {
		t.Fatalf("unexpected match with ErrUnavailable")
	}
}
