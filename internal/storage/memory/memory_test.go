package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/mmynk/receiptbook/internal/storage"
)

func TestSlotStore(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.Get(ctx, "k"); !errors.Is(err, storage.ErrSlotNotFound) {
		t.Fatalf("expected ErrSlotNotFound, got %v", err)
	}

	value := []byte("hello")
	if err := s.Put(ctx, "k", value); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	value[0] = 'j'

	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("stored value aliased caller buffer: %s", got)
	}

	got[0] = 'y'
	again, _ := s.Get(ctx, "k")
	if string(again) != "hello" {
		t.Errorf("returned value aliased stored buffer: %s", again)
	}
}
