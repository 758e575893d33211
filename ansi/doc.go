// Package ansi builds ANSI/VT100 Select Graphic Rendition (SGR) escape codes
// from a text attribute, a foreground color and a background color.
//
// The terminal is assumed to understand ESC[...m sequences, no detection or
// fallback is done.
//
// Basic usage:
//
//	fmt.Print(ansi.EscapeCode(ansi.BoldOn, ansi.Yellow, ansi.BgBlue))
//	fmt.Print("warning")
//	fmt.Println(ansi.Reset)
//
// Or with a Style:
//
//	warn := ansi.Style{Attr: ansi.BoldOn, Fg: ansi.Yellow, Bg: ansi.BgBlue}
//	fmt.Println(warn.Wrap("warning"))
package ansi
