package validation

import "strings"

// swift group boundaries fall after the 4th, 6th and 8th raw character,
// producing groups of lengths 4-2-2-2.
const swiftMaxRawLen = 12

// FormatResult is a formatted SWIFT code plus the cursor offset an
// interactive editor should move to.
type FormatResult struct {
	Text   string
	Cursor int
}

// FormatSwiftCode normalizes raw SWIFT input for display: dashes stripped,
// uppercased, truncated to 12 characters, with dashes re-inserted after the
// 4th, 6th and 8th character. Idempotent on an already-formatted string.
func FormatSwiftCode(input string) string {
	return FormatSwiftCodeWithCursor(input, len(input)).Text
}

// FormatSwiftCodeWithCursor formats raw input and recomputes the cursor
// offset. The new position is determined by the count of non-dash characters
// before the old cursor, shifted by one for each dash boundary crossed, so an
// editing cursor stays with the token it was next to rather than the raw
// byte offset.
func FormatSwiftCodeWithCursor(input string, cursor int) FormatResult {
	clean := strings.ToUpper(strings.ReplaceAll(input, "-", ""))
	if len(clean) > swiftMaxRawLen {
		clean = clean[:swiftMaxRawLen]
	}

	if cursor > len(input) {
		cursor = len(input)
	}
	if cursor < 0 {
		cursor = 0
	}
	charsBefore := len(strings.ReplaceAll(input[:cursor], "-", ""))
	if charsBefore > len(clean) {
		charsBefore = len(clean)
	}

	var b strings.Builder
	for i, r := range clean {
		if i == 4 || i == 6 || i == 8 {
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	text := b.String()

	newCursor := charsBefore
	switch {
	case charsBefore <= 4:
		// no dashes before the cursor
	case charsBefore <= 6:
		newCursor++
	case charsBefore <= 8:
		newCursor += 2
	default:
		newCursor += 3
	}
	if newCursor > len(text) {
		newCursor = len(text)
	}

	return FormatResult{Text: text, Cursor: newCursor}
}
