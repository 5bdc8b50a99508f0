package util

func IsNumber(r rune) bool {
	return r >= '0' && r <= '9'
}

func IsUnderScore(r rune) bool {
	return r == '_'
}

func IsLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func IsLetterOrUnderscoreOrNumber(r rune) bool {
	return IsLetter(r) || IsUnderScore(r) || IsNumber(r)
}

// IsASCIIPunctuation reports whether r is one of the printable ASCII symbols, i.e. anything
// in the ASCII range which is neither a letter, a digit, a space nor a control character.
func IsASCIIPunctuation(r rune) bool {
	return (r >= '!' && r <= '/') || (r >= ':' && r <= '@') || (r >= '[' && r <= '`') || (r >= '{' && r <= '~')
}

// IsWordCharacter reports whether r can be part of a buffered word. Underscore and signs
// are kept inside words so identifiers like a_b and literals like -5 stay in one piece.
func IsWordCharacter(r rune) bool {
	if r == '_' || r == '-' || r == '+' {
		return true
	}
	return !IsASCIIPunctuation(r)
}

// IsIdentifier reports whether word starts with an ASCII letter followed by letters, digits or
// underscores.
func IsIdentifier(word string) bool {
	if word == "" {
		return false
	}
	for i, r := range word {
		if i == 0 && !IsLetter(r) {
			return false
		}
		if !IsLetterOrUnderscoreOrNumber(r) {
			return false
		}
	}
	return true
}
