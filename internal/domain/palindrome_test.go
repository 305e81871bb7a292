package domain

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPalindrome(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"a", true},
		{"ab", false},
		{"aba", true},
		{"abba", true},
		{"abca", false},
		{"racecar", true},
		{"Racecar", false},
		{"a b a", true},
		{"ab a", false},
		{"été", true},
		{"étè", false},
		{"日本日", true},
		{"日本", false},
		{"a😀a", true},
		{"😀😁", false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, IsPalindrome(tc.input), "IsPalindrome(%q)", tc.input)
	}
}

func TestIsPalindromeSymmetricUnderReverse(t *testing.T) {
	inputs := []string{
		"", "x", "xy", "level", "levels", "noon", "moon", "ÀbÀ", "añna", "😀x😀",
	}

	for _, s := range inputs {
		assert.Equalf(t, IsPalindrome(s), IsPalindrome(Reverse(s)), "input %q", s)
	}
}

// one- to four-byte encodings, small enough that palindromes come up often
var alphabet = []rune{'a', 'b', 'c', 'é', 'ß', '日', '本', '😀', '\uFFFD'}

func randomString(rng *rand.Rand, maxLen int) string {
	var sb strings.Builder
	n := rng.IntN(maxLen + 1)
	for i := 0; i < n; i++ {
		sb.WriteRune(alphabet[rng.IntN(len(alphabet))])
	}
	return sb.String()
}

func TestIsPalindromeSymmetricUnderReverseRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	palindromes := 0
	for i := 0; i < 20000; i++ {
		s := randomString(rng, 6)
		got := IsPalindrome(s)
		if got {
			palindromes++
		}
		if got != IsPalindrome(Reverse(s)) {
			t.Fatalf("IsPalindrome(%q) = %v but IsPalindrome(Reverse) = %v", s, got, !got)
		}
		if got != (s == Reverse(s)) {
			t.Fatalf("IsPalindrome(%q) = %v disagrees with s == Reverse(s)", s, got)
		}
	}
	assert.Positive(t, palindromes)
}

func TestIsPalindromeSymmetricOnRandomBytes(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	buf := make([]byte, 7)
	for i := 0; i < 20000; i++ {
		n := rng.IntN(len(buf) + 1)
		for j := 0; j < n; j++ {
			buf[j] = byte(rng.UintN(256))
		}
		// the HTTP layer only lets valid UTF-8 through
		s := strings.ToValidUTF8(string(buf[:n]), "\uFFFD")
		if IsPalindrome(s) != IsPalindrome(Reverse(s)) {
			t.Fatalf("asymmetric result for %q (reverse %q)", s, Reverse(s))
		}
	}
}

func TestReverse(t *testing.T) {
	assert.Equal(t, "", Reverse(""))
	assert.Equal(t, "cba", Reverse("abc"))
	assert.Equal(t, "b日a", Reverse("a日b"))
	assert.Equal(t, "a日b", Reverse(Reverse("a日b")))
}

func TestPalindromeOfReverseConcatenation(t *testing.T) {
	for _, s := range []string{"a", "ab", "héllo", "日本語"} {
		assert.Truef(t, IsPalindrome(s+Reverse(s)), "even-length mirror of %q", s)
		assert.Truef(t, IsPalindrome(s+"|"+Reverse(s)), "odd-length mirror of %q", s)
	}
}

func BenchmarkIsPalindrome(b *testing.B) {
	input := "amanaplanacanalpanama"
	for i := 0; i < b.N; i++ {
		_ = IsPalindrome(input)
	}
}
