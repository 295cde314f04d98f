package util

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	for _, plain := range []string{"s3cret", "a", "correct horse battery staple"} {
		hash, err := HashPassword(plain)
		if err != nil {
			t.Fatalf("HashPassword(%q) error: %v", plain, err)
		}
		if hash == plain {
			t.Fatalf("hash equals plaintext for %q", plain)
		}
		if !CheckPassword(plain, hash) {
			t.Fatalf("CheckPassword rejected the original plaintext %q", plain)
		}
		if CheckPassword(plain+"x", hash) {
			t.Fatalf("CheckPassword accepted a different plaintext for %q", plain)
		}
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password are identical; salt missing")
	}
}
