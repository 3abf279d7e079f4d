package idp

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/binary"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// testKeyPair generates a throwaway RSA key and its base64url N/E
// components, the form the fabric reads out of AUTH0_SERVER_N/_E.
func testKeyPair(t *testing.T) (*rsa.PrivateKey, string, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	n := base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes())

	eBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(eBytes, uint64(key.PublicKey.E))
	// Trim leading zero bytes the way a real JWK's E field would arrive.
	i := 0
	for i < len(eBytes)-1 && eBytes[i] == 0 {
		i++
	}
	e := base64.RawURLEncoding.EncodeToString(eBytes[i:])

	return key, n, e
}

func TestPublicKeyFromNE(t *testing.T) {
	key, n, e := testKeyPair(t)

	pub, err := publicKeyFromNE(n, e)
	if err != nil {
		t.Fatalf("publicKeyFromNE: %v", err)
	}
	if pub.E != key.PublicKey.E {
		t.Errorf("E = %d, want %d", pub.E, key.PublicKey.E)
	}
	if pub.N.Cmp(key.PublicKey.N) != 0 {
		t.Errorf("N mismatch")
	}
}

func TestPublicKeyFromNEMissingComponents(t *testing.T) {
	if _, err := publicKeyFromNE("", "AQAB"); err == nil {
		t.Error("expected error for empty N")
	}
	if _, err := publicKeyFromNE("abc", ""); err == nil {
		t.Error("expected error for empty E")
	}
}

func signedToken(t *testing.T, key *rsa.PrivateKey, subject, audience, issuer string, expiresIn time.Duration) string {
	t.Helper()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings{audience},
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := tok.SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestVerifierVerify(t *testing.T) {
	key, n, e := testKeyPair(t)
	pub, err := publicKeyFromNE(n, e)
	if err != nil {
		t.Fatalf("publicKeyFromNE: %v", err)
	}
	v := &Verifier{pub: pub, audience: "chat-api", issuer: "https://issuer.example/"}

	token := signedToken(t, key, "auth0|abc123", "chat-api", "https://issuer.example/", time.Hour)
	subject, err := v.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != "auth0|abc123" {
		t.Errorf("subject = %q, want auth0|abc123", subject)
	}
}

func TestVerifierVerifyRejectsExpired(t *testing.T) {
	key, n, e := testKeyPair(t)
	pub, _ := publicKeyFromNE(n, e)
	v := &Verifier{pub: pub, audience: "chat-api", issuer: "https://issuer.example/"}

	token := signedToken(t, key, "auth0|abc123", "chat-api", "https://issuer.example/", -time.Hour)
	if _, err := v.Verify(token); err == nil {
		t.Error("expected expired token to fail verification")
	}
}

func TestVerifierVerifyRejectsWrongAudience(t *testing.T) {
	key, n, e := testKeyPair(t)
	pub, _ := publicKeyFromNE(n, e)
	v := &Verifier{pub: pub, audience: "chat-api", issuer: "https://issuer.example/"}

	token := signedToken(t, key, "auth0|abc123", "some-other-api", "https://issuer.example/", time.Hour)
	if _, err := v.Verify(token); err == nil {
		t.Error("expected mismatched audience to fail verification")
	}
}

func TestVerifierVerifyRejectsWrongKey(t *testing.T) {
	signingKey, _, _ := testKeyPair(t)
	_, otherN, otherE := testKeyPair(t)
	otherPub, _ := publicKeyFromNE(otherN, otherE)
	v := &Verifier{pub: otherPub, audience: "chat-api", issuer: "https://issuer.example/"}

	token := signedToken(t, signingKey, "auth0|abc123", "chat-api", "https://issuer.example/", time.Hour)
	if _, err := v.Verify(token); err == nil {
		t.Error("expected token signed by a different key to fail verification")
	}
}
