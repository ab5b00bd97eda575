package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("supersecret")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "supersecret" {
		t.Error("Hash() returned the raw password")
	}

	if !hasher.Verify("supersecret", hash) {
		t.Error("Verify() = false for the correct password")
	}
	if hasher.Verify("wrong", hash) {
		t.Error("Verify() = true for a wrong password")
	}
}

func TestNewPasswordHasher_OutOfRangeCost(t *testing.T) {
	hasher := NewPasswordHasher(99)

	hash, err := hasher.Hash("supersecret")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !hasher.Verify("supersecret", hash) {
		t.Error("Verify() = false after clamping an out-of-range cost")
	}
}
