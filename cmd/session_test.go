package cmd

import "testing"

func TestBankingVerbsRequireLogin(t *testing.T) {
	testCases := []struct {
		verb    string
		guarded bool
	}{
		{"open", true},
		{"pay", true},
		{"send", true},
		{"to", true},
		{"msg", true},
		{"date", true},
		{"tab", true},
		{"login", false},
		{"logout", false},
		{"back", false},
		{"ok", false},
		{"quit", false},
		{"", false},
	}
	for _, tc := range testCases {
		if got := bankingVerb(tc.verb); got != tc.guarded {
			t.Errorf("bankingVerb(%q) = %v, want %v", tc.verb, got, tc.guarded)
		}
	}
}
