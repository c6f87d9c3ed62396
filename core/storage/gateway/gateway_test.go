package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/antput/antput/core/model"
	"github.com/antput/antput/core/storage"
	"github.com/antput/antput/core/wallet"
)

func testPayment(t *testing.T) wallet.PaymentOption {
	t.Helper()

	w, err := wallet.NewFromPrivateKey(strings.Repeat("33", 32))
	if err != nil {
		t.Fatal(err)
	}
	return wallet.PayWith(w)
}

func TestPutObject(t *testing.T) {
	content := []byte("object via gateway")
	addr := model.AddressOf(content)
	payment := testPayment(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/v0/data" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("X-Ant-Payer"); got != payment.Wallet.Address() {
			t.Errorf("X-Ant-Payer = %q, want %q", got, payment.Wallet.Address())
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("X-Request-Id not set")
		}

		body, _ := io.ReadAll(r.Body)
		if !bytes.Equal(body, content) {
			t.Error("body does not match uploaded content")
		}

		json.NewEncoder(w).Encode(map[string]any{
			"cost":    42,
			"address": addr.String(),
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	receipt, err := c.PutObject(context.Background(), content, payment)
	if err != nil {
		t.Fatalf("PutObject: %v", err)
	}
	if receipt.Cost != 42 {
		t.Fatalf("cost = %d, want 42", receipt.Cost)
	}
	if receipt.Address != addr {
		t.Fatal("receipt address does not match")
	}
}

func TestPutObjectServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "payment rejected", http.StatusPaymentRequired)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.PutObject(context.Background(), []byte("x"), testPayment(t)); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestGetObject(t *testing.T) {
	content := []byte("fetched bytes")
	addr := model.AddressOf(content)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := "/v0/data/" + addr.String()
		if r.Method != http.MethodGet || r.URL.Path != want {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write(content)
	}))
	defer srv.Close()

	c := New(srv.URL)
	got, err := c.GetObject(context.Background(), addr)
	if err != nil {
		t.Fatalf("GetObject: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatal("fetched bytes differ")
	}
}

func TestGetObjectNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetObject(context.Background(), model.AddressOf([]byte("missing")))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("error = %v, want storage.ErrNotFound", err)
	}
}

func TestPutArchive(t *testing.T) {
	archive := model.NewArchive()
	archive.Add("a.txt", model.AddressOf([]byte("a")), model.NewMetadata(1))

	encoded, err := archive.Encode()
	if err != nil {
		t.Fatal(err)
	}
	archiveAddr := model.AddressOf(encoded)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/archive" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		body, _ := io.ReadAll(r.Body)
		if _, err := model.DecodeArchive(body); err != nil {
			t.Errorf("body is not a decodable archive: %v", err)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"cost":    7,
			"address": archiveAddr.String(),
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	receipt, err := c.PutArchive(context.Background(), archive, testPayment(t))
	if err != nil {
		t.Fatalf("PutArchive: %v", err)
	}
	if receipt.Address != archiveAddr {
		t.Fatal("receipt address does not match")
	}
}
