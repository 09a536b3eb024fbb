// pkg/keygen/keygen_test.go
package keygen

import (
	"strings"
	"testing"
)

func TestNewShareKeyShapeAndAlphabet(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		key, err := NewShareKey()
		if err != nil {
			t.Fatalf("beklenmeyen hata: %v", err)
		}
		if len(key) != ShareKeyLength {
			t.Fatalf("%d karakter bekleniyordu, %q geldi", ShareKeyLength, key)
		}
		for _, ch := range key {
			if !strings.ContainsRune(alphabet, ch) {
				t.Fatalf("alfabe disi karakter: %q", ch)
			}
		}
		seen[key] = true
	}
	// 200 denemede ciddi tekrar, uretecin bozuk oldugunu gosterir.
	if len(seen) < 190 {
		t.Fatalf("anahtar cesitliligi dusuk: %d benzersiz", len(seen))
	}
}
