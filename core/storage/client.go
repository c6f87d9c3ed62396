// Package storage defines the client surface of the content-addressed
// storage network. Concrete backends live in the localstore and gateway
// subpackages; the network's own chunking, payment settlement and
// replication are its business, not ours.
package storage

import (
	"context"
	"errors"

	"github.com/antput/antput/core/model"
	"github.com/antput/antput/core/wallet"
)

var ErrNotFound = errors.New("content not found")

// AttoTokens is an amount in the network's smallest fee unit.
type AttoTokens uint64

// PutReceipt is the result of a successful paid write.
type PutReceipt struct {
	Cost    AttoTokens
	Address model.Address
}

// Client performs the network I/O for objects and archives. Writes are
// paid and may be retried with the same payment; reads are free. All
// methods are safe to call repeatedly with the same arguments.
type Client interface {
	PutObject(ctx context.Context, data []byte, payment wallet.PaymentOption) (PutReceipt, error)
	GetObject(ctx context.Context, addr model.Address) ([]byte, error)
	PutArchive(ctx context.Context, archive *model.Archive, payment wallet.PaymentOption) (PutReceipt, error)
}
