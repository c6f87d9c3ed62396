package model

import "time"

// Metadata describes one uploaded object. Timestamps are epoch seconds
// taken from the wall clock at upload time, not from the source file.
type Metadata struct {
	Size     uint64 `cbor:"size"`
	Created  uint64 `cbor:"created"`
	Modified uint64 `cbor:"modified"`
}

// NewMetadata builds metadata for an object of the given size, stamped
// with the current time.
func NewMetadata(size uint64) Metadata {
	now := uint64(time.Now().Unix())
	return Metadata{
		Size:     size,
		Created:  now,
		Modified: now,
	}
}
