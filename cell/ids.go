package cell

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"
	mrand "math/rand/v2"

	"github.com/google/uuid"
)

// IDSource hands out cell identifiers. Identifiers are never reused.
type IDSource interface {
	NewID() string
}

// readerIDs draws version 4 UUIDs from a byte stream.
type readerIDs struct {
	r io.Reader
}

func (s *readerIDs) NewID() string {
	return uuid.Must(uuid.NewRandomFromReader(s.r)).String()
}

var defaultIDs IDSource = &readerIDs{r: rand.Reader}

// DefaultIDs returns the crypto-random identifier source.
func DefaultIDs() IDSource {
	return defaultIDs
}

// SeededIDs returns a deterministic identifier source. Two sources built from
// the same seed produce the same sequence.
func SeededIDs(seed int64) IDSource {
	var key [32]byte
	for i, salt := range []string{"a", "b", "c", "d"} {
		binary.LittleEndian.PutUint64(key[i*8:], seedWord(seed, salt))
	}
	// Non-cryptographic use: reproducible ids for tests and seeded runs.
	return &readerIDs{r: mrand.NewChaCha8(key)}
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
