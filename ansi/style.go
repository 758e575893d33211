package ansi

// Style bundles the three SGR fields so a color scheme can be passed around
// as one value.
type Style struct {
	Attr TextAttribute
	Fg   ForegroundColor
	Bg   BackgroundColor
}

// Code returns the escape code for s.
func (s Style) Code() string {
	return EscapeCode(s.Attr, s.Fg, s.Bg)
}

// Wrap returns text prefixed with the style's code and followed by Reset.
func (s Style) Wrap(text string) string {
	var buf [maxCodeLen]byte
	code := AppendEscapeCode(buf[:0], s.Attr, s.Fg, s.Bg)

	b := make([]byte, 0, len(code)+len(text)+len(Reset))
	b = append(b, code...)
	b = append(b, text...)
	b = append(b, Reset...)
	return string(b)
}
