package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/antput/antput/core/model"
)

// Summary is the closing report of an archive download. Entry failures
// end up here instead of aborting the batch: a partial retrieval of a
// large archive is still worth having.
type Summary struct {
	Succeeded int
	Failed    int
}

// Download fetches a single object and writes it to outputPath, creating
// parent directories as needed. Unlike uploads there is no retry; fetch
// or write failure is fatal.
func (p *Pipeline) Download(ctx context.Context, addr model.Address, outputPath string) error {
	data, err := p.client.GetObject(ctx, addr)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", addr, err)
	}

	log.Infow("fetched object", "address", addr, "size", len(data))

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	return nil
}

// DownloadArchive fetches the archive at addr and expands its entries
// under outputDir. Each entry is fetched and written independently; a
// failed entry is counted and the rest proceed.
func (p *Pipeline) DownloadArchive(ctx context.Context, addr model.Address, outputDir string) (*Summary, error) {
	raw, err := p.client.GetObject(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("fetch archive %s: %w", addr, err)
	}

	archive, err := model.DecodeArchive(raw)
	if err != nil {
		return nil, err
	}

	if archive.Len() == 0 {
		log.Infow("archive is empty, nothing to download", "address", addr)
		return &Summary{}, nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", outputDir, err)
	}

	// Stable order for logs; entry order carries no meaning.
	paths := make([]string, 0, archive.Len())
	for path := range archive.Entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	summary := &Summary{}
	for _, path := range paths {
		entry := archive.Entries[path]
		target := filepath.Join(outputDir, filepath.FromSlash(path))
		log.Infow("downloading entry", "path", path, "address", entry.Address, "target", target)

		if dir := filepath.Dir(target); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Errorw("failed to create subdirectory", "path", path, "error", err)
				summary.Failed++
				continue
			}
		}

		data, err := p.client.GetObject(ctx, entry.Address)
		if err != nil {
			log.Errorw("failed to fetch entry", "path", path, "address", entry.Address, "error", err)
			summary.Failed++
			continue
		}

		if err := os.WriteFile(target, data, 0o644); err != nil {
			log.Errorw("failed to write entry", "path", path, "target", target, "error", err)
			summary.Failed++
			continue
		}

		summary.Succeeded++
	}

	log.Infow("archive download complete", "succeeded", summary.Succeeded, "failed", summary.Failed)

	return summary, nil
}
