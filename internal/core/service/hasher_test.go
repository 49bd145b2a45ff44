package service

import "testing"

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(4) // minimum cost keeps the test fast

	hashed, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hashed == "secret1" {
		t.Fatalf("expected hash, got plaintext back")
	}

	if !h.Verify("secret1", hashed) {
		t.Fatalf("expected matching password to verify")
	}
	if h.Verify("secret2", hashed) {
		t.Fatalf("expected non-matching password to fail verification")
	}
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewBcryptHasher(4)

	first, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("expected per-hash salts to produce distinct hashes")
	}
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(99)

	hashed, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !h.Verify("secret1", hashed) {
		t.Fatalf("expected hash from fallback cost to verify")
	}
}
