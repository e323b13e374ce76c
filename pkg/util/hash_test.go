package util

import "testing"

func TestFingerprint(t *testing.T) {
	a := Fingerprint("data.csv", "1700000000", "2048")
	if a != Fingerprint("data.csv", "1700000000", "2048") {
		t.Fatal("fingerprint is not stable")
	}
	if a == Fingerprint("data.csv", "1700000001", "2048") {
		t.Fatal("different parts produced the same fingerprint")
	}
	if len(a) != 32 {
		t.Fatalf("unexpected fingerprint length %d", len(a))
	}
}

func TestHashString_Normalizes(t *testing.T) {
	if HashString(" Overview ") != HashString("overview") {
		t.Fatal("HashString should ignore case and padding")
	}
}
