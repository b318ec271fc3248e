package rules

import "github.com/0xalexb/hjarta-apidoc/typeref"

// Set is an ordered, immutable list of rules evaluated first-match-wins.
type Set struct {
	rules []AlternateTypeRule
}

// NewSet creates a Set holding rules in the given precedence order.
func NewSet(rules ...AlternateTypeRule) Set {
	out := make([]AlternateTypeRule, len(rules))
	copy(out, rules)

	return Set{rules: out}
}

// Len returns the number of rules.
func (s Set) Len() int {
	return len(s.rules)
}

// Rules returns a copy of the rules in precedence order.
func (s Set) Rules() []AlternateTypeRule {
	out := make([]AlternateTypeRule, len(s.rules))
	copy(out, s.rules)

	return out
}

// Append returns a new Set with rules added after the existing ones.
func (s Set) Append(rules ...AlternateTypeRule) Set {
	out := make([]AlternateTypeRule, 0, len(s.rules)+len(rules))
	out = append(out, s.rules...)
	out = append(out, rules...)

	return Set{rules: out}
}

// Match returns the first rule that applies to typ.
func (s Set) Match(typ typeref.Ref) (AlternateTypeRule, bool) {
	for _, rule := range s.rules {
		if rule.AppliesTo(typ) {
			return rule, true
		}
	}

	return AlternateTypeRule{}, false
}

// Apply returns the alternate produced by the first matching rule, or typ unchanged.
func (s Set) Apply(typ typeref.Ref) typeref.Ref {
	rule, ok := s.Match(typ)
	if !ok {
		return typ
	}

	return rule.Alternate(typ)
}
