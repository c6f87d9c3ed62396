// Package gateway is a storage backend that talks to an HTTP gateway
// node fronting the network. The gateway settles payments on behalf of
// the wallet named in the request headers.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/antput/antput/core/model"
	"github.com/antput/antput/core/storage"
	"github.com/antput/antput/core/wallet"
	"github.com/antput/antput/lib/logger"
)

var log, _ = logger.New("gateway")

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 120 * time.Second},
	}
}

// putResponse is the gateway's reply to a paid write.
type putResponse struct {
	Cost    uint64 `json:"cost"`
	Address string `json:"address"`
}

func (c *Client) put(ctx context.Context, path string, body []byte, payment wallet.PaymentOption) (storage.PutReceipt, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return storage.PutReceipt{}, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("X-Ant-Payer", payment.Wallet.Address())
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return storage.PutReceipt{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return storage.PutReceipt{}, fmt.Errorf("gateway put %s: %s", path, resp.Status)
	}

	var pr putResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return storage.PutReceipt{}, fmt.Errorf("gateway put %s: decode response: %w", path, err)
	}

	addr, err := model.DecodeAddress(pr.Address)
	if err != nil {
		return storage.PutReceipt{}, fmt.Errorf("gateway put %s: bad address in response: %w", path, err)
	}

	log.Infow("put accepted", "path", path, "address", addr, "cost", pr.Cost)

	return storage.PutReceipt{Cost: storage.AttoTokens(pr.Cost), Address: addr}, nil
}

func (c *Client) PutObject(ctx context.Context, data []byte, payment wallet.PaymentOption) (storage.PutReceipt, error) {
	return c.put(ctx, "/v0/data", data, payment)
}

func (c *Client) PutArchive(ctx context.Context, archive *model.Archive, payment wallet.PaymentOption) (storage.PutReceipt, error) {
	b, err := archive.Encode()
	if err != nil {
		return storage.PutReceipt{}, err
	}

	return c.put(ctx, "/v0/archive", b, payment)
}

func (c *Client) GetObject(ctx context.Context, addr model.Address) ([]byte, error) {
	url := fmt.Sprintf("%s/v0/data/%s", c.baseURL, addr)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, addr)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway get %s: %s", addr, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
