// Package gateway implements the HTTP client for the content-addressed
// storage network: pricing, wallet balance, transaction posting and
// inclusion status lookups.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/permapress/permapress-backend/internal/fault"
	"github.com/permapress/permapress-backend/internal/tx"
)

// InclusionStatus describes whether a transaction has been included in a
// block. Absence of inclusion data means the transaction is still pending.
type InclusionStatus struct {
	Included      bool
	BlockHeight   uint64
	BlockHash     string
	Confirmations uint64
}

// Client talks to a single gateway node.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a gateway client. baseURL must include the scheme.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("gateway url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("gateway url missing host")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// Price returns the sub-unit cost of storing byteLength bytes.
func (c *Client) Price(ctx context.Context, byteLength int64) (uint64, error) {
	body, err := c.get(ctx, fmt.Sprintf("/price/%d", byteLength))
	if err != nil {
		return 0, err
	}
	price, err := strconv.ParseUint(strings.TrimSpace(string(body)), 10, 64)
	if err != nil {
		return 0, fault.Errorf(fault.KindTransient, "parse price response: %w", err)
	}
	return price, nil
}

// Anchor returns a recent transaction anchor for inclusion in a new
// transaction.
func (c *Client) Anchor(ctx context.Context) (string, error) {
	body, err := c.get(ctx, "/tx_anchor")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// Balance returns the wallet's balance in sub-units.
func (c *Client) Balance(ctx context.Context, address string) (uint64, error) {
	body, err := c.get(ctx, fmt.Sprintf("/wallet/%s/balance", address))
	if err != nil {
		return 0, err
	}
	balance, err := strconv.ParseUint(strings.TrimSpace(string(body)), 10, 64)
	if err != nil {
		return 0, fault.Errorf(fault.KindTransient, "parse balance response: %w", err)
	}
	return balance, nil
}

// PostTransaction submits a signed transaction. Acceptance means the network
// answered 2xx; inclusion in a block remains asynchronous.
func (c *Client) PostTransaction(ctx context.Context, transaction *tx.Transaction) error {
	payload, err := json.Marshal(transaction)
	if err != nil {
		return fmt.Errorf("encode transaction: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tx", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build post request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fault.Errorf(fault.KindTransient, "post transaction: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fault.Errorf(fault.KindTransient, "post transaction: unexpected status %d", resp.StatusCode)
	}
	return nil
}

type statusResponse struct {
	BlockHeight   uint64 `json:"block_height"`
	BlockHash     string `json:"block_indep_hash"`
	Confirmations uint64 `json:"number_of_confirmations"`
}

// TxStatus returns the inclusion status of a transaction. A 202 or 404
// answer means the transaction is known but not yet included; neither is an
// error.
func (c *Client) TxStatus(ctx context.Context, id string) (InclusionStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/tx/"+id+"/status", nil)
	if err != nil {
		return InclusionStatus{}, fmt.Errorf("build status request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return InclusionStatus{}, fault.Errorf(fault.KindTransient, "query status: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		var status statusResponse
		if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
			return InclusionStatus{}, fault.Errorf(fault.KindTransient, "decode status response: %w", err)
		}
		if status.BlockHash == "" {
			return InclusionStatus{}, nil
		}
		return InclusionStatus{
			Included:      true,
			BlockHeight:   status.BlockHeight,
			BlockHash:     status.BlockHash,
			Confirmations: status.Confirmations,
		}, nil
	case http.StatusAccepted, http.StatusNotFound:
		return InclusionStatus{}, nil
	default:
		return InclusionStatus{}, fault.Errorf(fault.KindTransient, "query status: unexpected status %d", resp.StatusCode)
	}
}

// AssetURL returns the public retrieval URL for a submission id.
func (c *Client) AssetURL(id string) string {
	return c.baseURL + "/" + id
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fault.Errorf(fault.KindTransient, "get %s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fault.Errorf(fault.KindTransient, "get %s: unexpected status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fault.Errorf(fault.KindTransient, "read %s response: %w", path, err)
	}
	return body, nil
}
