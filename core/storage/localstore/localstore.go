// Package localstore is a storage backend that keeps network content in
// a local LevelDB database. It derives the same deterministic addresses
// the network would, so uploads and downloads behave identically against
// it; useful for development and tests where spending real tokens is
// unwanted.
package localstore

import (
	"context"
	"errors"
	"fmt"

	ds "github.com/ipfs/go-datastore"
	dslvl "github.com/ipfs/go-ds-leveldb"

	"github.com/antput/antput/core/model"
	"github.com/antput/antput/core/storage"
	"github.com/antput/antput/core/wallet"
	"github.com/antput/antput/lib/logger"
)

var log, _ = logger.New("localstore")

var ErrNoPayment = errors.New("write requires a payment wallet")

// costPerByte is the flat local tariff. Real network pricing depends on
// record churn and is out of scope; local writes only need a nonzero,
// size-proportional cost so callers exercise their accounting.
const costPerByte = 1

type Store struct {
	db *dslvl.Datastore
}

func New(path string) (*Store, error) {
	db, err := dslvl.NewDatastore(fmt.Sprintf("%s/content", path), nil)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func contentKey(addr model.Address) ds.Key {
	return ds.NewKey(addr.String())
}

func (s *Store) PutObject(ctx context.Context, data []byte, payment wallet.PaymentOption) (storage.PutReceipt, error) {
	if payment.Wallet == nil {
		return storage.PutReceipt{}, ErrNoPayment
	}

	addr := model.AddressOf(data)
	if err := s.db.Put(ctx, contentKey(addr), data); err != nil {
		return storage.PutReceipt{}, err
	}

	receipt := storage.PutReceipt{
		Cost:    storage.AttoTokens(len(data) * costPerByte),
		Address: addr,
	}
	log.Infow("stored object", "address", addr, "size", len(data), "payer", payment.Wallet.Address())

	return receipt, nil
}

func (s *Store) GetObject(ctx context.Context, addr model.Address) ([]byte, error) {
	b, err := s.db.Get(ctx, contentKey(addr))
	if errors.Is(err, ds.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, addr)
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Store) PutArchive(ctx context.Context, archive *model.Archive, payment wallet.PaymentOption) (storage.PutReceipt, error) {
	b, err := archive.Encode()
	if err != nil {
		return storage.PutReceipt{}, err
	}

	return s.PutObject(ctx, b, payment)
}
