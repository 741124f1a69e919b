package referral

import "testing"

func TestDisplayName(t *testing.T) {
	cases := []struct {
		name string
		user ReferralUser
		want string
	}{
		{"full name", ReferralUser{FirstName: "Anna", LastName: "Ivanova", Email: "anna@example.com"}, "Anna Ivanova"},
		{"first only", ReferralUser{FirstName: "Anna", Email: "anna@example.com"}, "Anna"},
		{"email fallback", ReferralUser{Email: "anna@example.com"}, "anna"},
		{"last name alone is ignored", ReferralUser{LastName: "Ivanova", Email: "anna@example.com"}, "anna"},
		{"email without at", ReferralUser{Email: "anna"}, "anna"},
	}
	for _, tc := range cases {
		if got := DisplayName(tc.user); got != tc.want {
			t.Errorf("%s: DisplayName = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestPluralReferrals(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "рефералов"},
		{1, "реферал"},
		{2, "реферала"},
		{4, "реферала"},
		{5, "рефералов"},
		{11, "рефералов"},
		{14, "рефералов"},
		{19, "рефералов"},
		{21, "реферал"},
		{22, "реферала"},
		{25, "рефералов"},
		{111, "рефералов"},
	}
	for _, tc := range cases {
		if got := PluralReferrals(tc.n); got != tc.want {
			t.Errorf("PluralReferrals(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "0,00 ₽"},
		{5, "5,00 ₽"},
		{1500.5, "1 500,50 ₽"},
		{1234567.89, "1 234 567,89 ₽"},
		{0.999, "1,00 ₽"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.amount); got != tc.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
