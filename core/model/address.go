package model

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// AddressSize is the fixed byte length of every content address on the
// network.
const AddressSize = 32

var (
	ErrInvalidEncoding = errors.New("address is not valid hex")
	ErrInvalidLength   = errors.New("address has wrong length")
)

// Address is a 32-byte content identifier derived by the network from the
// content itself. Object addresses and archive addresses share this
// representation; only their use differs.
type Address [AddressSize]byte

// DecodeAddress parses a hex-encoded address string.
func DecodeAddress(s string) (Address, error) {
	var addr Address

	b, err := hex.DecodeString(s)
	if err != nil {
		return addr, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	if len(b) != AddressSize {
		return addr, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, AddressSize, len(b))
	}

	copy(addr[:], b)
	return addr, nil
}

// AddressOf derives the content address for the given bytes. This mirrors
// the network's deterministic addressing so local backends agree with it.
func AddressOf(data []byte) Address {
	return Address(contentHash(data))
}

func (a Address) String() string {
	return hex.EncodeToString(a[:])
}
