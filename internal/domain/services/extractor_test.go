package services

import (
	"reflect"
	"testing"

	"elderguard/pkg/logger"
)

func newTestExtractor() *IntelExtractor {
	return NewIntelExtractor(logger.NewDefault())
}

func TestExtract(t *testing.T) {
	ie := newTestExtractor()

	cases := []struct {
		name     string
		text     string
		upis     []string
		phones   []string
		links    []string
		accounts []string
	}{
		{
			name: "upi id",
			text: "send money to ramesh.kumar@okaxis today",
			upis: []string{"ramesh.kumar@okaxis"},
		},
		{
			// the +91 number also carries a 12 digit run the account
			// pattern picks up, both leads go to the helpline
			name:     "phone with country code",
			text:     "call me at +919876543210 now",
			phones:   []string{"+919876543210"},
			accounts: []string{"919876543210"},
		},
		{
			name:  "link",
			text:  `open https://kyc-update.example.com/verify?id=1 immediately`,
			links: []string{"https://kyc-update.example.com/verify?id=1"},
		},
		{
			// without the 91 prefix the phone pattern does not fire,
			// the number still surfaces as an account lead
			name:     "bare ten digit number",
			text:     "transfer to 9876543210",
			accounts: []string{"9876543210"},
		},
		{
			name:     "long account number",
			text:     "account 123456789012345 IFSC SBIN0001234",
			accounts: []string{"123456789012345"},
		},
		{
			name: "duplicates collapse",
			text: "pay scam@ybl or scam@ybl",
			upis: []string{"scam@ybl"},
		},
		{
			name: "no matches",
			text: "hello beta how are you",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ie.Extract(tc.text)
			if !reflect.DeepEqual(got.UPIIDs, tc.upis) {
				t.Errorf("upi ids = %v, want %v", got.UPIIDs, tc.upis)
			}
			if !reflect.DeepEqual(got.Phones, tc.phones) {
				t.Errorf("phones = %v, want %v", got.Phones, tc.phones)
			}
			if !reflect.DeepEqual(got.Links, tc.links) {
				t.Errorf("links = %v, want %v", got.Links, tc.links)
			}
			if !reflect.DeepEqual(got.BankAccounts, tc.accounts) {
				t.Errorf("accounts = %v, want %v", got.BankAccounts, tc.accounts)
			}
		})
	}
}

func TestHandleMatches(t *testing.T) {
	ie := newTestExtractor()

	t.Run("known suffixes in order without duplicates", func(t *testing.T) {
		got := ie.HandleMatches("pay a@paytm or b@okaxis or c@paytm")
		if len(got) != 2 {
			t.Fatalf("got %d matches, want 2", len(got))
		}
		if got[0].Suffix != "paytm" || got[1].Suffix != "okaxis" {
			t.Errorf("suffixes = %s, %s; want paytm, okaxis", got[0].Suffix, got[1].Suffix)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := ie.HandleMatches("send to x@YBL")
		if len(got) != 1 || got[0].Suffix != "ybl" {
			t.Fatalf("got %v, want single ybl match", got)
		}
	})

	t.Run("unknown suffix ignored", func(t *testing.T) {
		if got := ie.HandleMatches("x@nosuchpsp"); len(got) != 0 {
			t.Fatalf("got %v, want none", got)
		}
	})
}
