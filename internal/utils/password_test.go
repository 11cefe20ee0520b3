package utils

import "testing"

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("employee123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "employee123" {
		t.Fatal("password stored in the clear")
	}

	if !CheckPassword("employee123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("employee124", hash) {
		t.Error("wrong password accepted")
	}
	if CheckPassword("employee123", "not-a-bcrypt-hash") {
		t.Error("malformed hash accepted")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	b, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical")
	}
}
