package tx

import (
	"crypto/sha512"
	"strconv"
)

// deepHash produces a digest over nested blob/list structures. Blobs are
// hashed with a "blob" length prefix; lists chain element hashes into an
// accumulator seeded with a "list" length prefix.

type deepHashable interface {
	hash() [48]byte
}

type blobItem struct{ data []byte }

type listItem struct{ items []deepHashable }

func blob(data []byte) deepHashable { return blobItem{data: data} }

func list(items ...deepHashable) deepHashable { return listItem{items: items} }

func (b blobItem) hash() [48]byte {
	tag := sha512.Sum384([]byte("blob" + strconv.Itoa(len(b.data))))
	payload := sha512.Sum384(b.data)
	return sha512.Sum384(append(tag[:], payload[:]...))
}

func (l listItem) hash() [48]byte {
	acc := sha512.Sum384([]byte("list" + strconv.Itoa(len(l.items))))
	for _, item := range l.items {
		sum := item.hash()
		acc = sha512.Sum384(append(acc[:], sum[:]...))
	}
	return acc
}

func deepHash(item deepHashable) []byte {
	sum := item.hash()
	return sum[:]
}
