package auth

import "testing"

func TestValidatePIN(t *testing.T) {
	cases := []struct {
		name  string
		pin   string
		valid bool
	}{
		{"five digits", "12345", true},
		{"leading zeros", "00012", true},
		{"all zeros", "00000", true},
		{"too short", "1234", false},
		{"too long", "123456", false},
		{"letter inside", "12a45", false},
		{"negative sign", "-1234", false},
		{"empty", "", false},
		{"spaces", "12 45", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePIN(tc.pin)
			if tc.valid && err != nil {
				t.Fatalf("expected valid PIN, got %v", err)
			}
			if !tc.valid && err == nil {
				t.Fatalf("expected validation error for %q", tc.pin)
			}
		})
	}
}

func TestHashAndComparePIN(t *testing.T) {
	hash, err := HashPIN("00012", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "00012" {
		t.Fatal("hash must not equal the plaintext PIN")
	}

	if err := ComparePIN(hash, "00012"); err != nil {
		t.Fatalf("compare with correct PIN: %v", err)
	}
	if err := ComparePIN(hash, "00013"); err == nil {
		t.Fatal("expected mismatch error for wrong PIN")
	}
}

func TestHashPINIsSalted(t *testing.T) {
	first, err := HashPIN("12345", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := HashPIN("12345", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same PIN should differ")
	}
}
