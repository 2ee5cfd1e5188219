package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"aidconnect/internal/util/memzero"
)

// envelopeVersion 2 uses XChaCha20-Poly1305 with a random nonce per write.
const envelopeVersion = 2

// envelopeLabel binds the ciphertext to its purpose.
var envelopeLabel = []byte("aidconnect/session")

// ErrWrongPassphrase is returned when the passphrase does not match or the
// sealed session file was altered.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted session file")

// kdf holds the scrypt cost parameters recorded next to each envelope.
type kdf struct {
	N int `json:"n"`
	R int `json:"r"`
	P int `json:"p"`
}

var defaultKDF = kdf{N: 1 << 15, R: 8, P: 1}

func (k kdf) derive(passphrase string, salt []byte) ([]byte, error) {
	return scrypt.Key([]byte(passphrase), salt, k.N, k.R, k.P, chacha20poly1305.KeySize)
}

type envelope struct {
	Version int    `json:"version"`
	KDF     kdf    `json:"kdf"`
	Salt    []byte `json:"salt"`
	Nonce   []byte `json:"nonce"`
	Data    []byte `json:"data"`
}

// sealDocument encrypts plain under a key derived from passphrase.
func sealDocument(passphrase string, plain []byte, params kdf) ([]byte, error) {
	env := envelope{
		Version: envelopeVersion,
		KDF:     params,
		Salt:    make([]byte, 16),
		Nonce:   make([]byte, chacha20poly1305.NonceSizeX),
	}
	if _, err := rand.Read(env.Salt); err != nil {
		return nil, fmt.Errorf("salt: %w", err)
	}
	if _, err := rand.Read(env.Nonce); err != nil {
		return nil, fmt.Errorf("nonce: %w", err)
	}

	key, err := params.derive(passphrase, env.Salt)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	env.Data = aead.Seal(nil, env.Nonce, plain, envelopeLabel)
	return json.Marshal(env)
}

// openDocument reverses sealDocument.
func openDocument(passphrase string, sealed []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(sealed, &env); err != nil {
		return nil, fmt.Errorf("decode sealed session: %w", err)
	}
	if env.Version != envelopeVersion {
		return nil, fmt.Errorf("unsupported session file version %d", env.Version)
	}
	if len(env.Nonce) != chacha20poly1305.NonceSizeX {
		return nil, ErrWrongPassphrase
	}

	key, err := env.KDF.derive(passphrase, env.Salt)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	plain, err := aead.Open(nil, env.Nonce, env.Data, envelopeLabel)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return plain, nil
}
