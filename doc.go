// Package stylec compiles declarative, nested style descriptions into flat
// CSS text organized into cascade layers, and tracks per-render style
// injection so identical <style> blocks are emitted at most once per scope.
//
// # Compilation
//
// Compile a component style configuration into a class map and CSS:
//
//	out, err := stylec.Compile(stylec.ComponentStyleConfig{
//		Layer: stylec.LayerComponents,
//		Styles: stylec.StyleObject{}.Set("button", stylec.StyleObject{}.
//			Set("padding", "1rem").
//			Set("&:hover", stylec.StyleObject{}.Set("opacity", 0.8)),
//		),
//	})
//
// out.ClassMap["button"] holds the generated class name; out.CSS holds the
// @layer-wrapped rules. Class names are unique per call, not across calls.
//
// # Deduplication
//
// Bracket each render with a scope, then gate every injection:
//
//	stylec.PushStyleScope()
//	defer stylec.PopStyleScope()
//	if stylec.ShouldInjectStyle(stylec.InjectionKey("button", out.CSS)) {
//		// embed out.CSS in the response
//	}
//
// Concurrent renders must use separate Registry instances instead of the
// package-level scope functions.
//
// # CLI Tool
//
// stylec also ships a CLI that compiles *.style.yaml manifests into a
// stylesheet bundle. Install with:
//
//	go install github.com/yacobolo/stylec/cmd/stylec@latest
package stylec
