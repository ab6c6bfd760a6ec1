package keycrypt

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

const testPassphrase = "correct horse battery staple"

// newEd25519Pair generates one ed25519 key and returns it PEM-encoded both
// plain and passphrase-protected.
func newEd25519Pair(t *testing.T) (plain, encrypted []byte) {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	block, err := ssh.MarshalPrivateKey(priv, "test@example")
	require.NoError(t, err)
	plain = pem.EncodeToMemory(block)

	encBlock, err := ssh.MarshalPrivateKeyWithPassphrase(priv, "test@example", []byte(testPassphrase))
	require.NoError(t, err)
	encrypted = pem.EncodeToMemory(encBlock)

	return plain, encrypted
}

// ── IsEncrypted ──────────────────────────────────────────────────────────────

func TestIsEncrypted(t *testing.T) {
	plain, encrypted := newEd25519Pair(t)

	got, err := IsEncrypted(plain)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = IsEncrypted(encrypted)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestIsEncrypted_NotAKey(t *testing.T) {
	_, err := IsEncrypted([]byte("this is not a key at all"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAKey)
}

// ── Decrypt ──────────────────────────────────────────────────────────────────

// TestDecrypt_Success verifies that a decrypted key parses cleanly and
// still identifies the same key pair.
func TestDecrypt_Success(t *testing.T) {
	plain, encrypted := newEd25519Pair(t)

	decrypted, err := Decrypt(encrypted, []byte(testPassphrase))
	require.NoError(t, err)

	isEnc, err := IsEncrypted(decrypted)
	require.NoError(t, err)
	assert.False(t, isEnc)

	wantFP, err := Fingerprint(plain)
	require.NoError(t, err)
	gotFP, err := Fingerprint(decrypted)
	require.NoError(t, err)
	assert.Equal(t, wantFP, gotFP)
}

func TestDecrypt_WrongPassphrase(t *testing.T) {
	_, encrypted := newEd25519Pair(t)

	_, err := Decrypt(encrypted, []byte("definitely wrong"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongPassphrase)
}

func TestDecrypt_NotAKey(t *testing.T) {
	_, err := Decrypt([]byte("garbage"), []byte(testPassphrase))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAKey)
}

func TestDecrypt_PlainKey(t *testing.T) {
	plain, _ := newEd25519Pair(t)

	_, err := Decrypt(plain, []byte(testPassphrase))
	require.Error(t, err)
}

// ── Fingerprint ──────────────────────────────────────────────────────────────

func TestFingerprint_Format(t *testing.T) {
	plain, _ := newEd25519Pair(t)

	fp, err := Fingerprint(plain)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(fp, "SHA256:"), "got %q", fp)
}

// TestFingerprint_EncryptedKey verifies that encrypted OpenSSH keys are
// fingerprinted from their plaintext public half, without the passphrase.
func TestFingerprint_EncryptedKey(t *testing.T) {
	plain, encrypted := newEd25519Pair(t)

	want, err := Fingerprint(plain)
	require.NoError(t, err)

	got, err := Fingerprint(encrypted)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFingerprint_NotAKey(t *testing.T) {
	_, err := Fingerprint([]byte("garbage"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAKey)
}

// ── AuthorizedKey ────────────────────────────────────────────────────────────

func TestAuthorizedKey(t *testing.T) {
	plain, _ := newEd25519Pair(t)

	line, err := AuthorizedKey(plain, "deploy@host")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(line, "ssh-ed25519 "), "got %q", line)
	assert.True(t, strings.HasSuffix(line, " deploy@host"), "got %q", line)
	assert.False(t, strings.ContainsRune(line, '\n'))
}

func TestAuthorizedKey_NoComment(t *testing.T) {
	plain, _ := newEd25519Pair(t)

	line, err := AuthorizedKey(plain, "")
	require.NoError(t, err)
	require.Len(t, strings.Fields(line), 2)
}

// ── RSA keys ─────────────────────────────────────────────────────────────────

// TestRSAKeys verifies the helpers against RSA keys in both the OpenSSH
// and the legacy PKCS#1 PEM container.
func TestRSAKeys(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	t.Run("openssh container", func(t *testing.T) {
		block, err := ssh.MarshalPrivateKey(priv, "rsa@example")
		require.NoError(t, err)
		data := pem.EncodeToMemory(block)

		isEnc, err := IsEncrypted(data)
		require.NoError(t, err)
		assert.False(t, isEnc)

		fp, err := Fingerprint(data)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(fp, "SHA256:"))

		line, err := AuthorizedKey(data, "")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(line, "ssh-rsa "))
	})

	t.Run("pkcs1 container", func(t *testing.T) {
		data := pem.EncodeToMemory(&pem.Block{
			Type:  "RSA PRIVATE KEY",
			Bytes: x509.MarshalPKCS1PrivateKey(priv),
		})

		isEnc, err := IsEncrypted(data)
		require.NoError(t, err)
		assert.False(t, isEnc)

		fp, err := Fingerprint(data)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(fp, "SHA256:"))
	})
}
