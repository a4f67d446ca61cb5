package utils

import "testing"

func TestHashPassword_NeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("hunter2secret", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "hunter2secret" {
		t.Fatal("hash equals the plaintext password")
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
}

func TestComparePassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ComparePassword(hash, "correct horse"); err != nil {
		t.Errorf("expected match for original password, got: %v", err)
	}
	if err := ComparePassword(hash, "wrong horse"); err == nil {
		t.Error("expected mismatch for a different password, got nil")
	}
}

// Per-call random salts mean two hashes of the same plaintext differ.
func TestHashPassword_SaltedPerUser(t *testing.T) {
	first, err := HashPassword("same-password", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("same-password", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("expected distinct hashes for the same password")
	}
}

func TestHashPassword_CostFallback(t *testing.T) {
	hash, err := HashPassword("whatever-password", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ComparePassword(hash, "whatever-password"); err != nil {
		t.Errorf("expected match after cost fallback, got: %v", err)
	}
}
