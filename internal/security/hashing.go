package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrHashMismatch is returned by Compare when the password does not match the
// stored hash.
var ErrHashMismatch = errors.New("password does not match hash")

const (
	saltLength = 16
	keyLength  = 32
)

// Hasher hashes and verifies passwords using argon2id with PHC string
// encoding. Callers must not log or persist plaintext passwords.
type Hasher struct {
	MemoryKB    uint32
	Time        uint32
	Parallelism uint8
}

// NewHasher returns a Hasher with the given argon2id cost parameters.
// Non-positive values fall back to the defaults (64 MiB memory, 3 iterations,
// parallelism 4), the baseline for interactive login.
func NewHasher(memoryKB, timeCost uint32, parallelism uint8) *Hasher {
	if memoryKB == 0 {
		memoryKB = 64 * 1024
	}
	if timeCost == 0 {
		timeCost = 3
	}
	if parallelism == 0 {
		parallelism = 4
	}
	return &Hasher{MemoryKB: memoryKB, Time: timeCost, Parallelism: parallelism}
}

// Hash derives an argon2id key from password with a fresh random salt and
// returns it encoded as a PHC string suitable for storage.
func (h *Hasher) Hash(password []byte) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey(password, salt, h.Time, h.MemoryKB, h.Parallelism, keyLength)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.MemoryKB, h.Time, h.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Compare verifies password against the stored PHC hash using the parameters
// encoded in the hash and a constant-time comparison. Returns nil on match,
// ErrHashMismatch on mismatch, and other errors for malformed hashes.
func (h *Hasher) Compare(hash string, password []byte) error {
	memoryKB, timeCost, parallelism, salt, key, err := decodePHC(hash)
	if err != nil {
		return err
	}
	computed := argon2.IDKey(password, salt, timeCost, memoryKB, parallelism, uint32(len(key)))
	if subtle.ConstantTimeCompare(computed, key) != 1 {
		return ErrHashMismatch
	}
	return nil
}

func decodePHC(hash string) (memoryKB, timeCost uint32, parallelism uint8, salt, key []byte, err error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, errors.New("malformed argon2id hash")
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return 0, 0, 0, nil, nil, errors.New("unsupported argon2 version")
	}
	for _, kv := range strings.Split(parts[3], ",") {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return 0, 0, 0, nil, nil, errors.New("malformed argon2id parameters")
		}
		n, perr := strconv.ParseUint(v, 10, 32)
		if perr != nil {
			return 0, 0, 0, nil, nil, errors.New("malformed argon2id parameters")
		}
		switch k {
		case "m":
			memoryKB = uint32(n)
		case "t":
			timeCost = uint32(n)
		case "p":
			parallelism = uint8(n)
		default:
			return 0, 0, 0, nil, nil, errors.New("malformed argon2id parameters")
		}
	}
	if memoryKB == 0 || timeCost == 0 || parallelism == 0 {
		return 0, 0, 0, nil, nil, errors.New("malformed argon2id parameters")
	}
	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, errors.New("malformed argon2id salt")
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return 0, 0, 0, nil, nil, errors.New("malformed argon2id key")
	}
	return memoryKB, timeCost, parallelism, salt, key, nil
}
