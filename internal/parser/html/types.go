package html

// RegionType identifies where a stylesheet sits in an HTML document
type RegionType int

const (
	// UnknownRegion is the zero value
	UnknownRegion RegionType = iota
	// StyleTag is the text of a <style> element
	StyleTag
	// StyleAttribute is the value of a style="..." attribute, a bare declaration list
	StyleAttribute
)

// CSSRegion is stylesheet text found in an HTML document.
// Lines and columns are 0-indexed; columns count bytes.
type CSSRegion struct {
	Content   string
	StartByte uint
	EndByte   uint
	StartLine uint
	StartCol  uint
	Type      RegionType
}
