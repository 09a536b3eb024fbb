// pkg/keygen/keygen.go
package keygen

import (
	"crypto/rand"
	"math/big"
)

// ShareKeyLength paylaşım anahtarının karakter sayısı.
const ShareKeyLength = 6

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewShareKey URL'de taşınabilir, küçük harf ve rakamdan oluşan rastgele
// anahtar üretir. Tahmin edilebilirlik önemli olduğundan crypto/rand kullanılır.
func NewShareKey() (string, error) {
	return randomString(ShareKeyLength)
}

func randomString(n int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}
