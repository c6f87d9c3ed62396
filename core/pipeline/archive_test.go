package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/antput/antput/core/model"
	"github.com/antput/antput/core/storage"
	"github.com/antput/antput/lib/retry"
)

func TestCreateArchiveSingleEntry(t *testing.T) {
	addr := model.AddressOf([]byte("previously uploaded"))
	meta := model.NewMetadata(19)

	client := &fakeClient{}
	p := newTestPipeline(client, nil)

	result, err := p.CreateArchive(context.Background(), addr, "some/dir/photo.jpg", meta)
	if err != nil {
		t.Fatalf("CreateArchive: %v", err)
	}

	if client.putArchiveCalls != 1 {
		t.Fatalf("archive put called %d times, want 1", client.putArchiveCalls)
	}
	if client.lastArchive.Len() != 1 {
		t.Fatalf("archive has %d entries, want 1", client.lastArchive.Len())
	}

	entry, ok := client.lastArchive.Entries["photo.jpg"]
	if !ok {
		t.Fatalf("entry keyed %v, want base name photo.jpg", client.lastArchive.Entries)
	}
	if entry.Address != addr {
		t.Fatal("entry references wrong address")
	}
	if entry.Metadata != meta {
		t.Fatal("entry metadata not preserved")
	}

	var zero model.Address
	if result.Address == zero {
		t.Fatal("no archive address returned")
	}
}

func TestCreateArchiveMissingFileName(t *testing.T) {
	client := &fakeClient{}
	p := newTestPipeline(client, nil)

	for _, path := range []string{"", ".", "/"} {
		_, err := p.CreateArchive(context.Background(), model.Address{}, path, model.NewMetadata(0))
		if !errors.Is(err, ErrMissingFileName) {
			t.Fatalf("CreateArchive(%q) error = %v, want ErrMissingFileName", path, err)
		}
	}
	if client.putArchiveCalls != 0 {
		t.Fatal("network touched despite invalid path")
	}
}

func TestCreateArchiveRetriesAndExhausts(t *testing.T) {
	var sleeps int
	client := &fakeClient{
		putArchive: func(*model.Archive) (storage.PutReceipt, error) {
			return storage.PutReceipt{}, errors.New("no quorum")
		},
	}
	p := newTestPipeline(client, &sleeps)

	_, err := p.CreateArchive(context.Background(), model.Address{}, "file.txt", model.NewMetadata(0))
	if err == nil {
		t.Fatal("expected exhaustion error")
	}

	var exhausted *retry.ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("error %v does not wrap ExhaustedError", err)
	}
	if client.putArchiveCalls != 3 {
		t.Fatalf("archive put called %d times, want 3", client.putArchiveCalls)
	}
	if sleeps != 2 {
		t.Fatalf("slept %d times, want 2", sleeps)
	}
}
