package model

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ArchiveEntry maps one relative path inside an archive to the address
// and metadata of its content.
type ArchiveEntry struct {
	Address  Address  `cbor:"address"`
	Metadata Metadata `cbor:"metadata"`
}

// Archive is a collection of named references to already-uploaded
// content. Paths are unique within one archive; adding a path twice
// overwrites the earlier entry.
type Archive struct {
	Entries map[string]ArchiveEntry `cbor:"entries"`
}

func NewArchive() *Archive {
	return &Archive{
		Entries: map[string]ArchiveEntry{},
	}
}

// Add records path as pointing at the object at addr.
func (a *Archive) Add(path string, addr Address, meta Metadata) {
	a.Entries[path] = ArchiveEntry{Address: addr, Metadata: meta}
}

func (a *Archive) Len() int {
	return len(a.Entries)
}

// Deterministic encoding so the same archive always serializes to the
// same bytes and therefore the same content address.
var archiveEncMode cbor.EncMode

func init() {
	var err error
	archiveEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("model: CBOR encoder initialization failed: " + err.Error())
	}
}

// Encode serializes the archive to its wire form.
func (a *Archive) Encode() ([]byte, error) {
	return archiveEncMode.Marshal(a)
}

// DecodeArchive parses archive wire bytes.
func DecodeArchive(data []byte) (*Archive, error) {
	var a Archive
	if err := cbor.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode archive: %w", err)
	}

	if a.Entries == nil {
		a.Entries = map[string]ArchiveEntry{}
	}

	return &a, nil
}
