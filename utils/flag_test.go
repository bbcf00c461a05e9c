// file: utils/flag_test.go
package utils

import (
	"strings"
	"testing"
)

// sha256("abc")
const abcDigest = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

func TestVerifyFlag(t *testing.T) {
	cases := []struct {
		name string
		flag string
		want bool
	}{
		{"exact match", "abc", true},
		{"leading/trailing whitespace is trimmed", "  abc\n", true},
		{"wrong flag", "abd", false},
		{"case sensitive", "ABC", false},
		{"empty input", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := VerifyFlag(tc.flag, abcDigest); got != tc.want {
				t.Fatalf("VerifyFlag(%q) = %v, want %v", tc.flag, got, tc.want)
			}
		})
	}
}

func TestVerifyFlagAcceptsUppercaseDigest(t *testing.T) {
	if !VerifyFlag("abc", strings.ToUpper(abcDigest)) {
		t.Fatal("stored digest casing must not matter")
	}
}

func TestDigestFlagDeterministic(t *testing.T) {
	if DigestFlag("GOT{winter_is_coming}") != DigestFlag(" GOT{winter_is_coming} ") {
		t.Fatal("digest must be computed over the trimmed text")
	}
	if DigestFlag("a") == DigestFlag("b") {
		t.Fatal("distinct flags must not collide")
	}
}

func TestGenerateFlagFormat(t *testing.T) {
	flag := GenerateFlag()
	if !strings.HasPrefix(flag, "GOT{") || !strings.HasSuffix(flag, "}") {
		t.Fatalf("unexpected flag format: %s", flag)
	}
	if flag == GenerateFlag() {
		t.Fatal("two generated flags collided")
	}
}
