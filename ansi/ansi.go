package ansi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TextAttribute is the display attribute field of an SGR code.
type TextAttribute uint8

const (
	AllOff         TextAttribute = 0
	BoldOn         TextAttribute = 1
	Underscore     TextAttribute = 4
	BlinkOn        TextAttribute = 5
	ReverseVideoOn TextAttribute = 7
	ConcealedOn    TextAttribute = 8
)

// ForegroundColor is the foreground field of an SGR code.
type ForegroundColor uint8

const (
	Black ForegroundColor = iota + 30
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// BackgroundColor is the background field of an SGR code.
type BackgroundColor uint8

const (
	BgBlack BackgroundColor = iota + 40
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgMagenta
	BgCyan
	BgWhite
)

var (
	textAttributes   = [...]TextAttribute{AllOff, BoldOn, Underscore, BlinkOn, ReverseVideoOn, ConcealedOn}
	foregroundColors = [...]ForegroundColor{Black, Red, Green, Yellow, Blue, Magenta, Cyan, White}
	backgroundColors = [...]BackgroundColor{BgBlack, BgRed, BgGreen, BgYellow, BgBlue, BgMagenta, BgCyan, BgWhite}
)

// TextAttributes returns every attribute in declaration order. The slice is
// a fresh copy owned by the caller.
func TextAttributes() []TextAttribute {
	s := textAttributes
	return s[:]
}

// ForegroundColors returns the eight foreground colors, Black first.
func ForegroundColors() []ForegroundColor {
	s := foregroundColors
	return s[:]
}

// BackgroundColors returns the eight background colors, BgBlack first.
func BackgroundColors() []BackgroundColor {
	s := backgroundColors
	return s[:]
}

var attrNames = map[TextAttribute]string{
	AllOff:         "AllOff",
	BoldOn:         "BoldOn",
	Underscore:     "Underscore",
	BlinkOn:        "BlinkOn",
	ReverseVideoOn: "ReverseVideoOn",
	ConcealedOn:    "ConcealedOn",
}

// Foreground and background share the color names, indexed by code%10.
var colorNames = [8]string{"Black", "Red", "Green", "Yellow", "Blue", "Magenta", "Cyan", "White"}

// ErrUnknownName is returned by the Parse functions for a name that is not a
// member of the enumeration.
var ErrUnknownName = errors.New("ansi: unknown name")

// Reset restores the terminal defaults used after colored output. It is
// EscapeCode(AllOff, White, BgBlack).
const Reset = "\x1b[0;37;40m"

const (
	escByte   = '\x1b'
	csiByte   = '['
	sepByte   = ';'
	finalByte = 'm'

	// ESC [ nnn ; nnn ; nnn m
	maxCodeLen = 2 + 3 + 1 + 3 + 1 + 3 + 1
)

// EscapeCode returns the SGR sequence ESC[<attr>;<fg>;<bg>m.
func EscapeCode(attr TextAttribute, fg ForegroundColor, bg BackgroundColor) string {
	var buf [maxCodeLen]byte
	return string(AppendEscapeCode(buf[:0], attr, fg, bg))
}

// AppendEscapeCode appends the SGR sequence for attr, fg and bg to dst and
// returns the extended buffer.
func AppendEscapeCode(dst []byte, attr TextAttribute, fg ForegroundColor, bg BackgroundColor) []byte {
	dst = append(dst, escByte, csiByte)
	dst = strconv.AppendUint(dst, uint64(attr), 10)
	dst = append(dst, sepByte)
	dst = strconv.AppendUint(dst, uint64(fg), 10)
	dst = append(dst, sepByte)
	dst = strconv.AppendUint(dst, uint64(bg), 10)
	return append(dst, finalByte)
}

// Valid reports whether a is one of the declared attributes.
func (a TextAttribute) Valid() bool {
	_, ok := attrNames[a]
	return ok
}

func (a TextAttribute) String() string {
	if name, ok := attrNames[a]; ok {
		return name
	}
	return "TextAttribute(" + strconv.Itoa(int(a)) + ")"
}

// Valid reports whether c is one of the eight foreground colors.
func (c ForegroundColor) Valid() bool { return c >= Black && c <= White }

func (c ForegroundColor) String() string {
	if c.Valid() {
		return colorNames[c-Black]
	}
	return "ForegroundColor(" + strconv.Itoa(int(c)) + ")"
}

// Valid reports whether c is one of the eight background colors.
func (c BackgroundColor) Valid() bool { return c >= BgBlack && c <= BgWhite }

func (c BackgroundColor) String() string {
	if c.Valid() {
		return colorNames[c-BgBlack]
	}
	return "BackgroundColor(" + strconv.Itoa(int(c)) + ")"
}

// ParseTextAttribute looks up an attribute by name, ignoring case.
func ParseTextAttribute(name string) (TextAttribute, error) {
	for _, a := range textAttributes {
		if strings.EqualFold(a.String(), name) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("text attribute %q: %w", name, ErrUnknownName)
}

// ParseForegroundColor looks up a foreground color by name, ignoring case.
func ParseForegroundColor(name string) (ForegroundColor, error) {
	for _, c := range foregroundColors {
		if strings.EqualFold(c.String(), name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("foreground color %q: %w", name, ErrUnknownName)
}

// ParseBackgroundColor looks up a background color by name, ignoring case.
// The names are the same as the foreground ones ("red", not "bgred").
func ParseBackgroundColor(name string) (BackgroundColor, error) {
	for _, c := range backgroundColors {
		if strings.EqualFold(c.String(), name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("background color %q: %w", name, ErrUnknownName)
}
