package token

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by a verification token. Only the fields
// a flow sets are populated; everything is opaque to the client because
// the signed token is encrypted before it leaves the server.
type Claims struct {
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	OTP         string `json:"otp,omitempty"`
	jwt.RegisteredClaims
}

// Codec encrypts and signs verification-token claims. The same key pair
// is shared process-wide; rotating either key invalidates all
// outstanding tokens.
type Codec struct {
	signingSecret []byte
	encryptionKey []byte
}

var signToken = func(t *jwt.Token, secret []byte) (string, error) {
	return t.SignedString(secret)
}

// NewCodec creates a codec from the signing secret and a 32-byte
// hex-encoded AES key.
func NewCodec(signingSecret, encryptionKeyHex string) (*Codec, error) {
	key, err := hex.DecodeString(encryptionKeyHex)
	if err != nil {
		return nil, errors.New("invalid encryption key hex")
	}
	if len(key) != 32 {
		return nil, errors.New("encryption key must be 32 bytes (64 hex chars)")
	}
	return &Codec{
		signingSecret: []byte(signingSecret),
		encryptionKey: key,
	}, nil
}

// Encode serializes claims into an opaque URL-safe token string. The
// claims are signed (HS256) and then encrypted (AES-GCM) so clients can
// neither read nor forge them.
func (c *Codec) Encode(claims *Claims) (string, error) {
	if claims.ExpiresAt == nil {
		return "", errors.New("claims must carry an expiry")
	}

	signed, err := signToken(jwt.NewWithClaims(jwt.SigningMethodHS256, claims), c.signingSecret)
	if err != nil {
		return "", err
	}

	sealed, err := c.encrypt([]byte(signed))
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decode reverses Encode. It is a total function: expired, tampered and
// plain garbage tokens are indistinguishable and all come back as
// (nil, false).
func (c *Codec) Decode(tokenString string) (*Claims, bool) {
	sealed, err := base64.RawURLEncoding.DecodeString(tokenString)
	if err != nil {
		return nil, false
	}

	signed, err := c.decrypt(sealed)
	if err != nil {
		return nil, false
	}

	parsed, err := jwt.ParseWithClaims(string(signed), &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.signingSecret, nil
	})
	if err != nil {
		return nil, false
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, false
	}
	return claims, true
}

func (c *Codec) encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(c.encryptionKey)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func (c *Codec) decrypt(sealed []byte) ([]byte, error) {
	block, err := aes.NewCipher(c.encryptionKey)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(sealed) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}
	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// ExpiresIn builds the registered claims for a token valid for the given
// duration from now.
func ExpiresIn(d time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(d)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
}
