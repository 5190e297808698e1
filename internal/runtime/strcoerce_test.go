package runtime

import "testing"

func TestCompareStringsOrdersLexicographically(t *testing.T) {
	if CompareStrings("apple", "banana") >= 0 {
		t.Error(`CompareStrings("apple", "banana") should be negative`)
	}
	if CompareStrings("banana", "apple") <= 0 {
		t.Error(`CompareStrings("banana", "apple") should be positive`)
	}
	if CompareStrings("same", "same") != 0 {
		t.Error(`CompareStrings("same", "same") should be 0`)
	}
}

func TestToLowerUpperCaseRoundTrip(t *testing.T) {
	if got := ToUpperCase("Hello"); got != "HELLO" {
		t.Errorf("ToUpperCase(Hello) = %q, want HELLO", got)
	}
	if got := ToLowerCase("Hello"); got != "hello" {
		t.Errorf("ToLowerCase(Hello) = %q, want hello", got)
	}
}
