package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/antput/antput/core/model"
	"github.com/antput/antput/core/storage"
	"github.com/antput/antput/lib/retry"
)

// UploadOptions are the operator's decisions about what happens after a
// successful upload, captured up front.
type UploadOptions struct {
	Verify  bool
	Archive bool
}

type UploadResult struct {
	Cost    storage.AttoTokens
	Address model.Address

	// Archived is set when an archive was requested and its upload
	// succeeded.
	Archived       bool
	ArchiveCost    storage.AttoTokens
	ArchiveAddress model.Address
}

// Upload reads the file at filePath, uploads it with retries, then runs
// the optional verification and archive steps. Failures in those optional
// steps are logged and swallowed; only failure of the upload itself is an
// error.
func (p *Pipeline) Upload(ctx context.Context, filePath, outputDir string, opts UploadOptions) (*UploadResult, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", filePath, err)
	}

	meta := model.NewMetadata(uint64(len(data)))
	log.Infow("read file", "path", filePath, "size", len(data))

	receipt, err := retry.Do(ctx, p.retry, "upload", func(ctx context.Context) (storage.PutReceipt, error) {
		return p.client.PutObject(ctx, data, p.payment)
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", filePath, err)
	}

	log.Infow("upload complete", "address", receipt.Address, "cost", receipt.Cost)

	result := &UploadResult{
		Cost:    receipt.Cost,
		Address: receipt.Address,
	}

	if opts.Verify {
		p.verifyUpload(ctx, data, receipt.Address, filePath, outputDir)
	} else {
		log.Infow("skipping verification")
	}

	if opts.Archive {
		ar, err := p.CreateArchive(ctx, receipt.Address, filePath, meta)
		if err != nil {
			log.Errorw("archive creation failed", "error", err)
		} else {
			result.Archived = true
			result.ArchiveCost = ar.Cost
			result.ArchiveAddress = ar.Address
		}
	} else {
		log.Infow("skipping archive creation")
	}

	return result, nil
}
