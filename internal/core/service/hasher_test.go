package service

import "testing"

func TestBcryptHasher_Matches(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "password" {
		t.Fatalf("hash must not equal the plaintext")
	}

	if !h.Matches(hash, "password") {
		t.Fatalf("expected match for correct password")
	}
	if h.Matches(hash, "Password") {
		t.Fatalf("expected non-match for wrong password")
	}
	if h.Matches(hash, "") {
		t.Fatalf("expected non-match for empty password")
	}
}

func TestBcryptHasher_UniqueSalts(t *testing.T) {
	h := NewBcryptHasher()

	a, err := h.Hash("password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := h.Hash("password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password must differ (salt)")
	}
	if !h.Matches(a, "password") || !h.Matches(b, "password") {
		t.Fatalf("both salted hashes must still match the password")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher()

	// A malformed verifier is a plain non-match, never a panic or a
	// distinguishable failure.
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$xx$garbage"} {
		if h.Matches(hash, "password") {
			t.Fatalf("malformed hash %q must not match", hash)
		}
	}
}
