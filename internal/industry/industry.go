package industry

import "strings"

// #region entry

// Entry is one row of the caller-supplied canonical industry list.
type Entry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// #endregion

// #region normalize

const maxKeyLen = 64

// NormalizeKey canonicalizes an industry key: lowercase, "&" becomes "and",
// runs of non-alphanumerics collapse to a single underscore, leading/trailing
// underscores are trimmed, and the result is capped at 64 characters.
// Every component that compares or emits keys goes through this.
func NormalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "&", "and")

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(r)
	}

	out := b.String()
	if len(out) > maxKeyLen {
		out = strings.TrimRight(out[:maxKeyLen], "_")
	}
	return out
}

// #endregion

// #region lookup

// Lookup finds the canonical entry whose normalized key matches key.
func Lookup(canon []Entry, key string) (Entry, bool) {
	want := NormalizeKey(key)
	for _, e := range canon {
		if NormalizeKey(e.Key) == want {
			return e, true
		}
	}
	return Entry{}, false
}

// LabelFor resolves a display label for key: canonical list first, then the
// built-in label table, then a title-cased rendering of the key itself.
func LabelFor(canon []Entry, key string) string {
	if e, ok := Lookup(canon, key); ok && e.Label != "" {
		return e.Label
	}
	norm := NormalizeKey(key)
	if l, ok := builtinLabels[norm]; ok {
		return l
	}
	return titleFromKey(norm)
}

func titleFromKey(key string) string {
	parts := strings.Split(key, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// #endregion

// #region builtin-labels

// builtinLabels covers the industries the rule tables know about, for callers
// that pass an empty canonical list.
var builtinLabels = map[string]string{
	"auto_detailing":    "Auto Detailing",
	"auto_repair":       "Auto Repair",
	"auto_collision":    "Collision & Body Work",
	"auto_glass":        "Auto Glass",
	"car_wash":          "Car Wash",
	"hvac":              "HVAC",
	"plumbing":          "Plumbing",
	"electrical":        "Electrical",
	"roofing":           "Roofing",
	"cleaning_services": "Cleaning Services",
	"landscaping":       "Landscaping & Lawn Care",
	"painting":          "Painting",
	"pressure_washing":  "Pressure Washing",
	"pest_control":      "Pest Control",
	"moving":            "Moving & Hauling",
	"service":           "Service",
}

// #endregion
