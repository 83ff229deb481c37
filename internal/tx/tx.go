// Package tx builds and signs storage transactions for the content-addressed
// network. A transaction's identifier is derived from its signature, so the
// uploaded object is retrievable by an id fixed at signing time.
package tx

import (
	"crypto/sha256"
	"encoding/base64"
	"strconv"

	"github.com/permapress/permapress-backend/internal/model"
)

// Signer authorizes a transaction. Satisfied by wallet.Credential.
type Signer interface {
	Owner() string
	Sign(digest []byte) ([]byte, error)
}

// Tag is the wire form of a name/value pair, base64url encoded.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Transaction is the wire form posted to the network.
type Transaction struct {
	Format    int    `json:"format"`
	ID        string `json:"id"`
	LastTx    string `json:"last_tx"`
	Owner     string `json:"owner"`
	Tags      []Tag  `json:"tags"`
	Target    string `json:"target"`
	Quantity  string `json:"quantity"`
	Data      string `json:"data"`
	DataSize  string `json:"data_size"`
	Reward    string `json:"reward"`
	Signature string `json:"signature"`
}

const format = 2

// Build assembles an unsigned transaction carrying the artifact bytes.
// Reward is the priced amount in sub-units; anchor is a recent network
// anchor obtained from the gateway.
func Build(data []byte, tags []model.Tag, anchor string, rewardSubUnits uint64, owner string) *Transaction {
	wireTags := make([]Tag, 0, len(tags))
	for _, tag := range tags {
		wireTags = append(wireTags, Tag{
			Name:  base64.RawURLEncoding.EncodeToString([]byte(tag.Name)),
			Value: base64.RawURLEncoding.EncodeToString([]byte(tag.Value)),
		})
	}
	return &Transaction{
		Format:   format,
		LastTx:   anchor,
		Owner:    owner,
		Tags:     wireTags,
		Target:   "",
		Quantity: "0",
		Data:     base64.RawURLEncoding.EncodeToString(data),
		DataSize: strconv.Itoa(len(data)),
		Reward:   strconv.FormatUint(rewardSubUnits, 10),
	}
}

// Sign computes the transaction digest, signs it and derives the id from the
// signature. The transaction must not be modified afterward.
func Sign(t *Transaction, signer Signer) error {
	digest, err := t.digest()
	if err != nil {
		return err
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		return err
	}
	t.Signature = base64.RawURLEncoding.EncodeToString(sig)

	id := sha256.Sum256(sig)
	t.ID = base64.RawURLEncoding.EncodeToString(id[:])
	return nil
}

// digest computes the deep hash of the signable fields. Field order is fixed
// by the wire protocol; changing it invalidates every signature.
func (t *Transaction) digest() ([]byte, error) {
	owner, err := base64.RawURLEncoding.DecodeString(t.Owner)
	if err != nil {
		return nil, err
	}
	anchor, err := base64.RawURLEncoding.DecodeString(t.LastTx)
	if err != nil {
		return nil, err
	}
	data, err := base64.RawURLEncoding.DecodeString(t.Data)
	if err != nil {
		return nil, err
	}

	tagItems := make([]deepHashable, 0, len(t.Tags))
	for _, tag := range t.Tags {
		name, err := base64.RawURLEncoding.DecodeString(tag.Name)
		if err != nil {
			return nil, err
		}
		value, err := base64.RawURLEncoding.DecodeString(tag.Value)
		if err != nil {
			return nil, err
		}
		tagItems = append(tagItems, list(blob(name), blob(value)))
	}

	sum := deepHash(list(
		blob([]byte(strconv.Itoa(t.Format))),
		blob(owner),
		blob([]byte(t.Target)),
		blob([]byte(t.Quantity)),
		blob([]byte(t.Reward)),
		blob(anchor),
		list(tagItems...),
		blob([]byte(t.DataSize)),
		blob(data),
	))

	// The signature digest is the SHA-256 of the deep hash so it matches the
	// signer's PSS hash function.
	digest := sha256.Sum256(sum)
	return digest[:], nil
}
