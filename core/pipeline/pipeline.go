// Package pipeline is the workflow engine behind the upload, archive and
// download commands: it owns the retry discipline around paid writes, the
// verify-then-archive sequencing after an upload, and the per-entry
// accounting when expanding an archive onto disk.
package pipeline

import (
	"github.com/antput/antput/core/storage"
	"github.com/antput/antput/core/wallet"
	"github.com/antput/antput/lib/logger"
	"github.com/antput/antput/lib/retry"
)

var log, _ = logger.New("pipeline")

type Pipeline struct {
	client  storage.Client
	payment wallet.PaymentOption
	retry   retry.Policy
}

func New(client storage.Client, payment wallet.PaymentOption, policy retry.Policy) *Pipeline {
	return &Pipeline{
		client:  client,
		payment: payment,
		retry:   policy,
	}
}
