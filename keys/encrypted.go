package keys

import (
	"crypto/rand"

	"golang.org/x/crypto/scrypt"

	"github.com/mosaic-proto/mosaic-core/errs"
	"github.com/mosaic-proto/mosaic-core/zbase32"
)

// EncryptedSecretKeySize is the fixed wire size: 2-byte header + 16-byte
// salt + 40-byte xored payload.
const EncryptedSecretKeySize = 58

const (
	version1   = 0x01
	maxLogN    = 22
	saltSize   = 16
	streamSize = 40 // 32 (secret key) + 4 (rand) + 4 (checkbytes xor rand)
)

var checkBytes = [4]byte{0xb9, 0x60, 0xa1, 0xe2}

// EncryptedSecretKey is a scrypt-derived, XOR-masked container for a
// SecretKey, versioned so that future KDF parameter changes stay
// decodable.
type EncryptedSecretKey [EncryptedSecretKeySize]byte

// FromSecretKey encrypts sk under password using scrypt with cost 2^logN,
// r=8, p=1. logN must be <= 22 to bound the computational cost of deriving
// the key.
func FromSecretKey(sk SecretKey, password string, logN uint8) (EncryptedSecretKey, error) {
	var out EncryptedSecretKey
	if logN > maxLogN {
		return out, errs.At(errs.ErrExcessiveScryptLogN)
	}

	var salt [saltSize]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return out, err
	}

	var rand4 [4]byte
	if _, err := rand.Read(rand4[:]); err != nil {
		return out, err
	}

	k, err := deriveStream(password, salt[:], logN)
	if err != nil {
		return out, err
	}

	var plain [streamSize]byte
	copy(plain[0:32], sk[:])
	copy(plain[32:36], rand4[:])
	for i := 0; i < 4; i++ {
		plain[36+i] = checkBytes[i] ^ rand4[i]
	}

	out[0] = version1
	out[1] = logN
	copy(out[2:2+saltSize], salt[:])
	for i := 0; i < streamSize; i++ {
		out[2+saltSize+i] = k[i] ^ plain[i]
	}

	return out, nil
}

// ToSecretKey decrypts with password, failing with ErrBadPassword if the
// checkbytes don't match.
func (e EncryptedSecretKey) ToSecretKey(password string) (SecretKey, error) {
	var sk SecretKey

	version := e[0]
	if version != version1 {
		return sk, errs.At(errs.ErrUnsupportedEncryptedSecretKeyVersion)
	}

	logN := e[1]
	if logN > maxLogN {
		return sk, errs.At(errs.ErrExcessiveScryptLogN)
	}

	salt := e[2 : 2+saltSize]

	k, err := deriveStream(password, salt, logN)
	if err != nil {
		return sk, err
	}

	var plain [streamSize]byte
	for i := 0; i < streamSize; i++ {
		plain[i] = k[i] ^ e[2+saltSize+i]
	}

	var rand4, checkXorRand4 [4]byte
	copy(rand4[:], plain[32:36])
	copy(checkXorRand4[:], plain[36:40])

	var recoveredCheck [4]byte
	for i := 0; i < 4; i++ {
		recoveredCheck[i] = checkXorRand4[i] ^ rand4[i]
	}
	if recoveredCheck != checkBytes {
		return sk, errs.At(errs.ErrBadPassword)
	}

	copy(sk[:], plain[0:32])

	return sk, nil
}

func deriveStream(password string, salt []byte, logN uint8) ([]byte, error) {
	n := 1 << logN

	k, err := scrypt.Key([]byte(password), salt, n, 8, 1, streamSize)
	if err != nil {
		return nil, errs.At(errs.ErrBadEncryptedSecretKey)
	}

	return k, nil
}

// Bytes returns the packed 58-byte wire form.
func (e EncryptedSecretKey) Bytes() []byte {
	return e[:]
}

// NewEncryptedSecretKey parses an EncryptedSecretKey from exactly 58 bytes,
// rejecting unsupported versions or an excessive scrypt log_n up front.
func NewEncryptedSecretKey(b []byte) (EncryptedSecretKey, error) {
	var e EncryptedSecretKey
	if len(b) != EncryptedSecretKeySize {
		return e, errs.At(errs.ErrWrongLength)
	}

	copy(e[:], b)

	if e[0] != version1 {
		return e, errs.At(errs.ErrUnsupportedEncryptedSecretKeyVersion)
	}
	if e[1] > maxLogN {
		return e, errs.At(errs.ErrExcessiveScryptLogN)
	}

	return e, nil
}

// Printable renders the mocryptsec0... printable form.
func (e EncryptedSecretKey) Printable() string {
	return zbase32.EncodeTyped(zbase32.PrefixEncryptedSecretKey, e[:])
}

// ParseEncryptedSecretKey decodes a mocryptsec0... printable
// EncryptedSecretKey.
func ParseEncryptedSecretKey(s string) (EncryptedSecretKey, error) {
	b, err := zbase32.DecodeTyped(zbase32.PrefixEncryptedSecretKey, s, EncryptedSecretKeySize)
	if err != nil {
		return EncryptedSecretKey{}, err
	}

	return NewEncryptedSecretKey(b)
}
