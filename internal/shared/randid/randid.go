package randid

import (
	"crypto/rand"
	"math/big"
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Suffix returns n random base36 characters. Used for time-based ids that
// only need to avoid same-millisecond collisions, not cryptographic
// uniqueness.
func Suffix(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(alphabet)))
	for i := range b {
		v, err := rand.Int(rand.Reader, max)
		if err != nil {
			b[i] = '0'
			continue
		}
		b[i] = alphabet[v.Int64()]
	}
	return string(b)
}
