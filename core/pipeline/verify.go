package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/antput/antput/core/model"
)

// verifyUpload fetches the just-uploaded content once (no retry) and
// compares it against the original bytes. A matching copy is written to
// outputDir under the file's base name; a divergent copy is kept next to
// it with a .mismatched suffix for inspection. Nothing here fails the
// upload: fetch and write problems are reported and swallowed.
func (p *Pipeline) verifyUpload(ctx context.Context, original []byte, addr model.Address, filePath, outputDir string) {
	fetched, err := p.client.GetObject(ctx, addr)
	if err != nil {
		log.Errorw("verification fetch failed, skipping verification", "address", addr, "error", err)
		return
	}

	log.Infow("verification fetch complete", "address", addr, "size", len(fetched))

	name := filepath.Base(filePath)
	if bytes.Equal(original, fetched) {
		target := filepath.Join(outputDir, name)
		log.Infow("verification succeeded, data matches", "target", target)
		if err := os.WriteFile(target, fetched, 0o644); err != nil {
			log.Warnw("failed to write verified file", "target", target, "error", err)
		}
		return
	}

	target := filepath.Join(outputDir, name+".mismatched")
	log.Errorw("verification failed, data mismatch", "target", target)
	if err := os.WriteFile(target, fetched, 0o644); err != nil {
		log.Warnw("failed to write mismatched file", "target", target, "error", err)
	}
}
