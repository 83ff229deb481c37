// Package wallet loads the RSA signing credential used to authorize storage
// transactions. The credential is read-only for the lifetime of a submission
// and is never persisted or displayed by this module.
package wallet

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/big"
	"os"

	"github.com/permapress/permapress-backend/internal/fault"
)

// Credential wraps a parsed RSA key pair in JWK form.
type Credential struct {
	key   *rsa.PrivateKey
	owner string
}

type jwk struct {
	KeyType string `json:"kty"`
	N       string `json:"n"`
	E       string `json:"e"`
	D       string `json:"d"`
	P       string `json:"p"`
	Q       string `json:"q"`
	DP      string `json:"dp"`
	DQ      string `json:"dq"`
	QI      string `json:"qi"`
}

// Load reads and parses a JWK credential file.
func Load(path string) (*Credential, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.Errorf(fault.KindInvalidInput, "read credential %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a JWK document into a usable credential.
func Parse(raw []byte) (*Credential, error) {
	var doc jwk
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fault.Errorf(fault.KindInvalidInput, "decode credential: %w", err)
	}
	if doc.KeyType != "RSA" {
		return nil, fault.Errorf(fault.KindInvalidInput, "unsupported key type %q", doc.KeyType)
	}

	n, err := decodeBig(doc.N)
	if err != nil {
		return nil, fault.Errorf(fault.KindInvalidInput, "credential modulus: %w", err)
	}
	e, err := decodeBig(doc.E)
	if err != nil {
		return nil, fault.Errorf(fault.KindInvalidInput, "credential exponent: %w", err)
	}
	d, err := decodeBig(doc.D)
	if err != nil {
		return nil, fault.Errorf(fault.KindInvalidInput, "credential private exponent: %w", err)
	}
	p, err := decodeBig(doc.P)
	if err != nil {
		return nil, fault.Errorf(fault.KindInvalidInput, "credential prime p: %w", err)
	}
	q, err := decodeBig(doc.Q)
	if err != nil {
		return nil, fault.Errorf(fault.KindInvalidInput, "credential prime q: %w", err)
	}
	if !e.IsInt64() {
		return nil, fault.Errorf(fault.KindInvalidInput, "credential exponent out of range")
	}

	key := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{N: n, E: int(e.Int64())},
		D:         d,
		Primes:    []*big.Int{p, q},
	}
	key.Precompute()
	if err := key.Validate(); err != nil {
		return nil, fault.Errorf(fault.KindInvalidInput, "validate credential: %w", err)
	}

	return &Credential{key: key, owner: doc.N}, nil
}

// Owner returns the public modulus in the wire encoding used on transactions.
func (c *Credential) Owner() string {
	return c.owner
}

// Address derives the wallet address from the public modulus.
func (c *Credential) Address() string {
	raw, err := base64.RawURLEncoding.DecodeString(c.owner)
	if err != nil {
		// owner came from Parse, which only stores valid encodings
		return ""
	}
	sum := sha256.Sum256(raw)
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// Sign produces an RSA-PSS signature over the given digest.
func (c *Credential) Sign(digest []byte) ([]byte, error) {
	return rsa.SignPSS(rand.Reader, c.key, crypto.SHA256, digest, &rsa.PSSOptions{
		SaltLength: 32,
		Hash:       crypto.SHA256,
	})
}

// Public returns the public key for signature verification.
func (c *Credential) Public() *rsa.PublicKey {
	return &c.key.PublicKey
}

func decodeBig(value string) (*big.Int, error) {
	if value == "" {
		return nil, errors.New("missing field")
	}
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(raw), nil
}
