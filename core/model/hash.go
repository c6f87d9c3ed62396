package model

import "github.com/zeebo/blake3"

// contentDomainKey keys the BLAKE3 hash used for address derivation so
// content addresses never collide with hashes computed for other purposes.
// ASCII so the key is readable in hex dumps; changing it invalidates every
// address already derived from it.
var contentDomainKey = [32]byte{
	'a', 'n', 't', 'p', 'u', 't', '.', 'c', 'o', 'n', 't', 'e', 'n', 't',
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

func contentHash(data []byte) [32]byte {
	h, err := blake3.NewKeyed(contentDomainKey[:])
	if err != nil {
		// NewKeyed only fails on a key of the wrong size.
		panic("model: blake3 keyed hasher: " + err.Error())
	}

	h.Write(data)

	var sum [32]byte
	h.Sum(sum[:0])
	return sum
}
