package js

// Segment is the literal text of a template between ${...} substitutions.
// Lines and columns are 0-indexed; columns count bytes.
type Segment struct {
	Content   string
	StartByte uint
	EndByte   uint
	StartLine uint
	StartCol  uint
}

// TemplateRegion is a css or html tagged template literal
type TemplateRegion struct {
	Segments []Segment
	// Tag is TagCSS or TagHTML
	Tag string
}
