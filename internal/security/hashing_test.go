package security

import (
	"errors"
	"strings"
	"testing"
)

// Small parameters keep the test fast; production defaults come from config.
func testHasher() *Hasher {
	return &Hasher{MemoryKB: 8 * 1024, Time: 1, Parallelism: 1}
}

func TestHashAndCompare(t *testing.T) {
	h := testHasher()
	hash, err := h.Hash([]byte("correct horse battery staple"))
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("hash %q is not PHC-encoded argon2id", hash)
	}
	if err := h.Compare(hash, []byte("correct horse battery staple")); err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if err := h.Compare(hash, []byte("wrong password")); !errors.Is(err, ErrHashMismatch) {
		t.Fatalf("Compare wrong password = %v, want ErrHashMismatch", err)
	}
}

func TestHashesAreSalted(t *testing.T) {
	h := testHasher()
	a, err := h.Hash([]byte("pw"))
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, err := h.Hash([]byte("pw"))
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password are identical; salt not applied")
	}
}

func TestCompareUsesEncodedParameters(t *testing.T) {
	weak := testHasher()
	hash, err := weak.Hash([]byte("pw-pw-pw-pw"))
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	// A hasher configured with different costs must still verify hashes
	// produced under the old parameters.
	strong := NewHasher(16*1024, 2, 2)
	if err := strong.Compare(hash, []byte("pw-pw-pw-pw")); err != nil {
		t.Fatalf("Compare with different configured costs: %v", err)
	}
}

func TestCompareRejectsMalformed(t *testing.T) {
	h := testHasher()
	for _, hash := range []string{"", "plain", "$argon2id$v=19$m=8192,t=1,p=1$salt", "$bcrypt$whatever"} {
		err := h.Compare(hash, []byte("pw"))
		if err == nil || errors.Is(err, ErrHashMismatch) {
			t.Fatalf("Compare(%q) = %v, want decode error", hash, err)
		}
	}
}

func TestNewHasherDefaults(t *testing.T) {
	h := NewHasher(0, 0, 0)
	if h.MemoryKB != 64*1024 || h.Time != 3 || h.Parallelism != 4 {
		t.Fatalf("defaults = m=%d t=%d p=%d, want m=65536 t=3 p=4", h.MemoryKB, h.Time, h.Parallelism)
	}
}
