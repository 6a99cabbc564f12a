package stylec

import "strings"

// keyKind is the parsed shape of a style key. Classification happens once,
// up front, and the compiler dispatches on the tag — keys are never
// re-sniffed during recursion.
type keyKind int

const (
	kindProperty keyKind = iota
	kindNestedSelector
	kindContainer
	kindMedia
	kindSupports
)

// classifyKey maps a style key to its kind. The function is total: every
// key lands in exactly one kind, with plain property as the fallback.
func classifyKey(key string) keyKind {
	switch key {
	case "@container":
		return kindContainer
	case "@media":
		return kindMedia
	case "@supports":
		return kindSupports
	}
	if strings.HasPrefix(key, "&") || strings.HasPrefix(key, " ") {
		return kindNestedSelector
	}
	return kindProperty
}

// unitlessProperties lists the CSS properties whose numeric values must not
// receive a px suffix.
var unitlessProperties = map[string]bool{
	"opacity":                   true,
	"flex-grow":                 true,
	"flex-shrink":               true,
	"font-weight":               true,
	"line-height":               true,
	"order":                     true,
	"z-index":                   true,
	"animation-iteration-count": true,
	"aspect-ratio":              true,
}

// breakpoints maps named media-query shorthands to literal media conditions.
// Unknown names that already look like a parenthesized media feature pass
// through; anything else is treated as a raw min-width value.
var breakpoints = map[string]string{
	"mobile":         "(max-width: 640px)",
	"tablet":         "(min-width: 768px)",
	"desktop":        "(min-width: 1024px)",
	"wide":           "(min-width: 1280px)",
	"print":          "print",
	"reduced-motion": "(prefers-reduced-motion: reduce)",
	"dark":           "(prefers-color-scheme: dark)",
	"light":          "(prefers-color-scheme: light)",
	"high-contrast":  "(prefers-contrast: more)",
}

// resolveMediaCondition turns a media-query key into a usable condition.
// Unknown conditions degrade to a min-width query rather than erroring;
// an invalid media feature merely fails to match in the browser.
func resolveMediaCondition(cond string) string {
	if resolved, ok := breakpoints[cond]; ok {
		return resolved
	}
	if strings.HasPrefix(cond, "(") {
		return cond
	}
	return "(min-width: " + cond + ")"
}
