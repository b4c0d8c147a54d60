package scoring

import (
	"regexp"
	"strings"

	"github.com/quotelens/interview-engine/internal/questionbank"
)

// #region pattern

// Pattern matches free text either by lowercase substring or by regex.
// Each pattern is a boolean test: it contributes its points at most once per
// haystack regardless of repeat occurrences.
type Pattern struct {
	substr string
	regex  *regexp.Regexp
}

// Substr builds a lowercase-substring pattern.
func Substr(s string) Pattern {
	return Pattern{substr: s}
}

// Regex builds a regex pattern. The expression is compiled once at table
// construction; patterns are static configuration, so a bad expression is a
// programming error.
func Regex(expr string) Pattern {
	return Pattern{regex: regexp.MustCompile(expr)}
}

// Match reports whether the pattern occurs anywhere in the lowercased haystack.
func (p Pattern) Match(haystack string) bool {
	if p.regex != nil {
		return p.regex.MatchString(haystack)
	}
	return p.substr != "" && strings.Contains(haystack, p.substr)
}

// #endregion

// #region rule-types

// KeywordRule maps free-text patterns to an industry key. Each matching
// pattern adds 1 point.
type KeywordRule struct {
	Key      string
	Patterns []Pattern
}

// OptionBoost adds a fixed point value to an industry key when the answer to
// a specific question matches the trigger pattern.
type OptionBoost struct {
	QuestionID string
	Trigger    Pattern
	Key        string
	Points     int
}

// Rules bundles both static tables. Treated as immutable configuration
// injected at construction, so tests can substitute smaller tables.
type Rules struct {
	Keywords []KeywordRule
	Boosts   []OptionBoost
}

// DefaultOptionBoost is the standard point value for a matched option.
const DefaultOptionBoost = 6

// #endregion

// #region default-keywords

// DefaultRules returns the built-in keyword and option-boost tables.
func DefaultRules() Rules {
	return Rules{Keywords: defaultKeywords, Boosts: defaultBoosts}
}

var defaultKeywords = []KeywordRule{
	{Key: "auto_detailing", Patterns: []Pattern{
		Substr("detail"), Substr("ceramic"), Substr("coating"),
		Substr("paint correction"), Substr("paint protection"),
		Substr("polish"), Substr("wax"), Substr("ppf"),
		Regex(`\bbuff(ing)?\b`), Regex(`\btint(ing)?\b`),
	}},
	{Key: "auto_repair", Patterns: []Pattern{
		Substr("engine"), Substr("brake"), Substr("transmission"),
		Substr("oil change"), Substr("diagnostic"), Substr("suspension"),
		Substr("alternator"), Regex(`\bmechanic\b`), Substr("tune-up"),
		Substr("check engine"),
	}},
	{Key: "auto_collision", Patterns: []Pattern{
		Substr("collision"), Substr("body work"), Substr("bodywork"),
		Substr("dent"), Substr("bumper"), Substr("frame"),
		Substr("insurance claim"), Substr("respray"),
	}},
	{Key: "auto_glass", Patterns: []Pattern{
		Substr("windshield"), Substr("auto glass"), Substr("chip repair"),
		Substr("glass replacement"),
	}},
	{Key: "car_wash", Patterns: []Pattern{
		Substr("car wash"), Substr("hand wash"), Substr("wash and vacuum"),
	}},
	{Key: "hvac", Patterns: []Pattern{
		Substr("hvac"), Substr("furnace"), Substr("air condition"),
		Substr("heat pump"), Substr("ductwork"), Substr("refrigerant"),
		Substr("thermostat"), Substr("mini split"),
	}},
	{Key: "plumbing", Patterns: []Pattern{
		Substr("plumb"), Substr("drain"), Substr("water heater"),
		Substr("sewer"), Substr("faucet"), Substr("toilet"),
		Regex(`\bpipes?\b`), Substr("leak repair"),
	}},
	{Key: "electrical", Patterns: []Pattern{
		Substr("electric"), Substr("wiring"), Substr("breaker"),
		Substr("outlet"), Substr("panel upgrade"), Substr("rewir"),
		Substr("lighting install"),
	}},
	{Key: "roofing", Patterns: []Pattern{
		Substr("roof"), Substr("shingle"), Substr("gutter"),
		Substr("flashing"), Substr("skylight"),
	}},
	{Key: "cleaning_services", Patterns: []Pattern{
		Substr("janitorial"), Substr("maid"), Substr("housekeeping"),
		Substr("deep clean"), Substr("carpet clean"), Substr("move-out clean"),
		Substr("office clean"), Substr("house clean"),
	}},
	{Key: "landscaping", Patterns: []Pattern{
		Substr("landscap"), Substr("lawn"), Regex(`\bmow(ing)?\b`),
		Substr("hedge"), Substr("irrigation"), Substr("mulch"),
		Substr("sod "),
	}},
	{Key: "painting", Patterns: []Pattern{
		Substr("painting"), Substr("interior paint"), Substr("exterior paint"),
		Substr("drywall"), Regex(`\bstain(ing)?\b`),
	}},
	{Key: "pressure_washing", Patterns: []Pattern{
		Substr("pressure wash"), Substr("power wash"), Substr("soft wash"),
		Substr("driveway clean"),
	}},
	{Key: "pest_control", Patterns: []Pattern{
		Substr("pest"), Substr("exterminat"), Substr("termite"),
		Substr("rodent"), Substr("bed bug"),
	}},
	{Key: "moving", Patterns: []Pattern{
		Substr("moving company"), Substr("movers"), Substr("hauling"),
		Substr("junk removal"),
	}},
}

// #endregion

// #region default-boosts

var defaultBoosts = []OptionBoost{
	// Broad opener
	{QuestionID: questionbank.QServices, Trigger: Regex(`detail|ceramic|coating|paint protection`), Key: "auto_detailing", Points: DefaultOptionBoost},
	{QuestionID: questionbank.QServices, Trigger: Substr("mechanical repair"), Key: "auto_repair", Points: DefaultOptionBoost},
	{QuestionID: questionbank.QServices, Trigger: Substr("hvac"), Key: "hvac", Points: DefaultOptionBoost},
	{QuestionID: questionbank.QServices, Trigger: Substr("plumbing"), Key: "plumbing", Points: DefaultOptionBoost},
	{QuestionID: questionbank.QServices, Trigger: Substr("electrical"), Key: "electrical", Points: DefaultOptionBoost},
	{QuestionID: questionbank.QServices, Trigger: Substr("roofing"), Key: "roofing", Points: DefaultOptionBoost},
	{QuestionID: questionbank.QServices, Trigger: Substr("cleaning"), Key: "cleaning_services", Points: DefaultOptionBoost},

	// Narrowing questions carry smaller boosts.
	{QuestionID: questionbank.QMaterialsObjects, Trigger: Substr("outdoor"), Key: "landscaping", Points: 3},
	{QuestionID: questionbank.QSpecialty, Trigger: Regex(`ceramic|ppf|paint correction`), Key: "auto_detailing", Points: 3},

	// Clarifier options move the contested pair decisively.
	{QuestionID: "clarify_detail_vs_repair", Trigger: Regex(`clean|polish|protect`), Key: "auto_detailing", Points: DefaultOptionBoost},
	{QuestionID: "clarify_detail_vs_repair", Trigger: Regex(`fix|mechanical|repair`), Key: "auto_repair", Points: DefaultOptionBoost},
	{QuestionID: "clarify_detail_vs_cleaning", Trigger: Regex(`vehicle|car`), Key: "auto_detailing", Points: DefaultOptionBoost},
	{QuestionID: "clarify_detail_vs_cleaning", Trigger: Regex(`home|office|building`), Key: "cleaning_services", Points: DefaultOptionBoost},
	{QuestionID: "clarify_repair_vs_collision", Trigger: Regex(`accident|insurance|body`), Key: "auto_collision", Points: DefaultOptionBoost},
	{QuestionID: "clarify_repair_vs_collision", Trigger: Regex(`mechanical|breakdown|maintenance`), Key: "auto_repair", Points: DefaultOptionBoost},
}

// #endregion
