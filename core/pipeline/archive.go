package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/antput/antput/core/model"
	"github.com/antput/antput/core/storage"
	"github.com/antput/antput/lib/retry"
)

var ErrMissingFileName = errors.New("cannot derive a file name for the archive entry")

type ArchiveResult struct {
	Cost    storage.AttoTokens
	Address model.Address
}

// CreateArchive uploads a new single-entry archive referencing addr under
// the base name of displayPath. The archive write goes through the same
// retry discipline as object uploads.
func (p *Pipeline) CreateArchive(ctx context.Context, addr model.Address, displayPath string, meta model.Metadata) (*ArchiveResult, error) {
	name := filepath.Base(displayPath)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return nil, fmt.Errorf("%w: %q", ErrMissingFileName, displayPath)
	}

	archive := model.NewArchive()
	archive.Add(name, addr, meta)

	log.Infow("uploading archive", "entry", name, "address", addr)

	receipt, err := retry.Do(ctx, p.retry, "archive upload", func(ctx context.Context) (storage.PutReceipt, error) {
		return p.client.PutArchive(ctx, archive, p.payment)
	})
	if err != nil {
		return nil, fmt.Errorf("upload archive: %w", err)
	}

	log.Infow("archive upload complete", "address", receipt.Address, "cost", receipt.Cost)

	return &ArchiveResult{Cost: receipt.Cost, Address: receipt.Address}, nil
}
