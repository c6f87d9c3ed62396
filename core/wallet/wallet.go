package wallet

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"
)

const keySize = 32

var (
	ErrInvalidKey     = errors.New("private key is not valid hex")
	ErrInvalidKeySize = errors.New("private key has wrong length")
)

// Wallet holds the payment credential for writes to the network. The key
// is opaque to this tool; signing and settlement happen inside the
// storage backend.
type Wallet struct {
	key     [keySize]byte
	address string
}

// NewFromPrivateKey builds a wallet from a hex-encoded 32-byte private
// key, with or without a 0x prefix.
func NewFromPrivateKey(hexKey string) (*Wallet, error) {
	hexKey = strings.TrimPrefix(hexKey, "0x")

	b, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(b) != keySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeySize, keySize, len(b))
	}

	w := &Wallet{}
	copy(w.key[:], b)
	w.address = deriveAddress(w.key)
	return w, nil
}

// Address returns the wallet's public payment address.
func (w *Wallet) Address() string {
	return w.address
}

// PaymentOption selects how a write is paid for. Currently always a
// wallet; cheap to copy so every retry attempt can carry its own.
type PaymentOption struct {
	Wallet *Wallet
}

func PayWith(w *Wallet) PaymentOption {
	return PaymentOption{Wallet: w}
}

var walletDomainKey = [32]byte{
	'a', 'n', 't', 'p', 'u', 't', '.', 'w', 'a', 'l', 'l', 'e', 't',
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

func deriveAddress(key [keySize]byte) string {
	h, err := blake3.NewKeyed(walletDomainKey[:])
	if err != nil {
		panic("wallet: blake3 keyed hasher: " + err.Error())
	}
	h.Write(key[:])

	sum := h.Sum(nil)
	return "0x" + hex.EncodeToString(sum[:20])
}
