package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/antput/antput/core/model"
	"github.com/antput/antput/core/storage"
	"github.com/antput/antput/core/wallet"
	"github.com/antput/antput/lib/retry"
)

// fakeClient stands in for the network. Behaviour is supplied per test;
// call counts are recorded so tests can assert how often the network was
// touched.
type fakeClient struct {
	putObject  func(data []byte) (storage.PutReceipt, error)
	getObject  func(addr model.Address) ([]byte, error)
	putArchive func(archive *model.Archive) (storage.PutReceipt, error)

	putObjectCalls  int
	getObjectCalls  int
	putArchiveCalls int

	lastArchive *model.Archive
}

func (f *fakeClient) PutObject(ctx context.Context, data []byte, payment wallet.PaymentOption) (storage.PutReceipt, error) {
	f.putObjectCalls++
	if f.putObject == nil {
		return storage.PutReceipt{Cost: 1, Address: model.AddressOf(data)}, nil
	}
	return f.putObject(data)
}

func (f *fakeClient) GetObject(ctx context.Context, addr model.Address) ([]byte, error) {
	f.getObjectCalls++
	if f.getObject == nil {
		return nil, errors.New("fake: no content")
	}
	return f.getObject(addr)
}

func (f *fakeClient) PutArchive(ctx context.Context, archive *model.Archive, payment wallet.PaymentOption) (storage.PutReceipt, error) {
	f.putArchiveCalls++
	f.lastArchive = archive
	if f.putArchive == nil {
		b, err := archive.Encode()
		if err != nil {
			return storage.PutReceipt{}, err
		}
		return storage.PutReceipt{Cost: 1, Address: model.AddressOf(b)}, nil
	}
	return f.putArchive(archive)
}

func testPolicy(sleeps *int) retry.Policy {
	return retry.Policy{
		MaxAttempts: 3,
		Delay:       time.Second,
		Sleep: func(ctx context.Context, d time.Duration) error {
			if sleeps != nil {
				*sleeps++
			}
			return nil
		},
	}
}

func newTestPipeline(client storage.Client, sleeps *int) *Pipeline {
	w, err := wallet.NewFromPrivateKey("1111111111111111111111111111111111111111111111111111111111111111")
	if err != nil {
		panic(err)
	}
	return New(client, wallet.PayWith(w), testPolicy(sleeps))
}
