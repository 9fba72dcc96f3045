package ticker

import "testing"

func TestNormalize_TableDriven(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "suffix and punctuation", input: "Apple Inc.", want: "apple"},
		{name: "lowercase variant", input: "apple inc", want: "apple"},
		{name: "multiple suffixes", input: "Acme Holdings Group Ltd.", want: "acme"},
		{name: "plural enterprises", input: "Wayne Enterprises", want: "wayne"},
		{name: "singular enterprise", input: "Stark Enterprise", want: "stark"},
		{name: "internal punctuation", input: "Amazon.com Inc", want: "amazoncom"},
		{name: "ampersand", input: "Procter & Gamble Co", want: "procter gamble"},
		{name: "whitespace collapse", input: "  International   Business \t Machines Corp ", want: "business machines"},
		{name: "digits survive", input: "3M Company", want: "3m company"},
		{name: "suffix only", input: "Inc.", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.input); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	a := Normalize("Apple Inc.")
	b := Normalize("apple inc")
	if a != b {
		t.Fatalf("expected identical keys, got %q and %q", a, b)
	}
	if a != Normalize("Apple Inc.") {
		t.Fatalf("Normalize is not deterministic")
	}
}

func TestNormalize_WordBoundary(t *testing.T) {
	// "co" must only be removed as a whole word, never inside one
	if got := Normalize("Costco Wholesale Corp"); got != "costco wholesale" {
		t.Fatalf("got %q, want %q", got, "costco wholesale")
	}
}
