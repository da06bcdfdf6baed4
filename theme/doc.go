// Package theme replaces theme(<path>) calls in stylesheets with quoted,
// resolved file paths.
//
// A stylesheet such as
//
//	@value black, white from theme(colors);
//
// processed with ThemePath "/themes/default" becomes
//
//	@value black, white from "/themes/default/colors.css";
//
// Resolution is pluggable: a ResolverFunc receives the default resolver and
// may rewrite the path before delegating to it, or replace it entirely.
package theme
