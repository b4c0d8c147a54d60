package industry

import (
	"strings"
	"testing"
)

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already normal", "auto_detailing", "auto_detailing"},
		{"spaces and case", "Auto Detailing", "auto_detailing"},
		{"ampersand", "Body & Paint", "body_and_paint"},
		{"punctuation runs", "--ceramic---coating!!", "ceramic_coating"},
		{"leading trailing junk", "  / plumbing / ", "plumbing"},
		{"digits kept", "24/7 towing", "24_7_towing"},
		{"empty", "", ""},
		{"only junk", "///", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeKey(tc.in); got != tc.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeKeyCapsLength(t *testing.T) {
	long := strings.Repeat("abcde ", 30)
	got := NormalizeKey(long)
	if len(got) > 64 {
		t.Fatalf("normalized key is %d chars, cap is 64", len(got))
	}
	if strings.HasSuffix(got, "_") {
		t.Errorf("capped key ends with underscore: %q", got)
	}
}

func TestLookup(t *testing.T) {
	canon := []Entry{
		{Key: "Auto Detailing", Label: "Auto Detailing"},
		{Key: "hvac", Label: "Heating & Cooling"},
	}

	e, ok := Lookup(canon, "auto_detailing")
	if !ok || e.Label != "Auto Detailing" {
		t.Errorf("Lookup auto_detailing = %+v, %v", e, ok)
	}
	if _, ok := Lookup(canon, "roofing"); ok {
		t.Error("Lookup found an entry that is not in the canonical list")
	}
}

func TestLabelFor(t *testing.T) {
	canon := []Entry{{Key: "hvac", Label: "Heating & Cooling"}}

	cases := []struct {
		name string
		key  string
		want string
	}{
		{"canonical list wins", "hvac", "Heating & Cooling"},
		{"builtin table", "auto_detailing", "Auto Detailing"},
		{"title fallback", "mobile_welding", "Mobile Welding"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LabelFor(canon, tc.key); got != tc.want {
				t.Errorf("LabelFor(%q) = %q, want %q", tc.key, got, tc.want)
			}
		})
	}
}
