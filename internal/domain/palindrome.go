package domain

import "unicode/utf8"

// IsPalindrome reports whether input reads the same forward and backward.
// Characters are compared as Unicode code points decoded from UTF-8, so input
// is expected to be valid UTF-8; an invalid byte decodes as utf8.RuneError.
// No case folding or other normalization is applied, so "Aa" is not a
// palindrome.
func IsPalindrome(input string) bool {
	left, right := 0, len(input)
	for left < right {
		lr, lsize := utf8.DecodeRuneInString(input[left:right])
		rr, rsize := utf8.DecodeLastRuneInString(input[left:right])
		if left+lsize >= right {
			// a single character remains in the middle
			return true
		}
		if lr != rr || lsize != rsize {
			return false
		}
		left += lsize
		right -= rsize
	}
	return true
}

// Reverse returns input with its code points in reverse order. Like
// IsPalindrome it is meant for valid UTF-8.
func Reverse(input string) string {
	out := make([]byte, 0, len(input))
	for end := len(input); end > 0; {
		_, size := utf8.DecodeLastRuneInString(input[:end])
		out = append(out, input[end-size:end]...)
		end -= size
	}
	return string(out)
}
