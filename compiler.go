package stylec

import (
	"strconv"
	"strings"
)

// compileObject recursively compiles one StyleObject against a selector
// (class name without the leading dot) into CSS rule-text fragments.
//
// Entries are partitioned into five buckets — base declarations, nested
// selectors, @container, @media, @supports — each keeping its own insertion
// order, and fragments are emitted in that fixed bucket order. The bucket
// order, not the interleaved key order, decides where at-rules land
// relative to the base rule, so output is reproducible regardless of how
// the input object was assembled.
func compileObject(style StyleObject, selector string) ([]string, error) {
	var base, nested, containers, medias, supports []StyleEntry
	for _, e := range style {
		switch classifyKey(e.Key) {
		case kindProperty:
			base = append(base, e)
		case kindNestedSelector:
			nested = append(nested, e)
		case kindContainer:
			containers = append(containers, e)
		case kindMedia:
			medias = append(medias, e)
		case kindSupports:
			supports = append(supports, e)
		}
	}

	var frags []string

	// Base rule, only when there is something to declare. An object holding
	// nothing but at-rule groups still compiles; it just has no base rule.
	if len(base) > 0 {
		var b strings.Builder
		b.WriteString("." + selector + " {")
		for _, e := range base {
			val, err := formatValue(e.Key, e.Value)
			if err != nil {
				return nil, err
			}
			b.WriteString(" " + kebabCase(e.Key) + ": " + val + ";")
		}
		b.WriteString(" }")
		frags = append(frags, b.String())
	}

	for _, e := range nested {
		obj, ok := e.Value.(StyleObject)
		if !ok {
			return nil, configErrorf(e.Key, "nested selector requires a style object, got %T", e.Value)
		}
		inner, err := compileObject(obj, composeSelector(selector, e.Key))
		if err != nil {
			return nil, err
		}
		frags = append(frags, inner...)
	}

	groups := []struct {
		entries []StyleEntry
		wrap    func(cond, css string) string
	}{
		{containers, func(cond, css string) string { return "@container " + cond + " { " + css + " }" }},
		{medias, func(cond, css string) string { return "@media " + resolveMediaCondition(cond) + " { " + css + " }" }},
		{supports, func(cond, css string) string { return "@supports " + cond + " { " + css + " }" }},
	}
	for _, g := range groups {
		for _, e := range g.entries {
			conditions, ok := e.Value.(StyleObject)
			if !ok {
				return nil, configErrorf(e.Key, "at-rule group requires condition → style object entries, got %T", e.Value)
			}
			for _, cond := range conditions {
				obj, ok := cond.Value.(StyleObject)
				if !ok {
					return nil, configErrorf(e.Key, "condition %q requires a style object, got %T", cond.Key, cond.Value)
				}
				// At-rule contents compile against the same selector, not a
				// composed one.
				inner, err := compileObject(obj, selector)
				if err != nil {
					return nil, err
				}
				if len(inner) == 0 {
					continue
				}
				frags = append(frags, g.wrap(cond.Key, strings.Join(inner, " ")))
			}
		}
	}

	return frags, nil
}

// composeSelector merges a nested-selector key into the parent selector.
// "&" attaches to the parent (".btn-x1:hover"); a leading space keeps
// descendant-combinator semantics (".btn-x1 .icon").
func composeSelector(parent, key string) string {
	if strings.HasPrefix(key, "&") {
		return parent + key[1:]
	}
	return parent + key
}

// formatValue renders a declaration value. Numbers get a px suffix unless
// the property is unitless; strings pass through verbatim — this compiler
// transforms structure, it does not validate CSS.
func formatValue(property string, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return withUnit(property, strconv.Itoa(v)), nil
	case int64:
		return withUnit(property, strconv.FormatInt(v, 10)), nil
	case float64:
		return withUnit(property, strconv.FormatFloat(v, 'f', -1, 64)), nil
	case float32:
		return withUnit(property, strconv.FormatFloat(float64(v), 'f', -1, 32)), nil
	default:
		return "", configErrorf(property, "unsupported value type %T", value)
	}
}

func withUnit(property, formatted string) string {
	if unitlessProperties[kebabCase(property)] {
		return formatted
	}
	return formatted + "px"
}
