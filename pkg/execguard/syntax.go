package execguard

import (
	"fmt"
	"strings"
)

// checkSyntax is a light structural validation of Python source: balanced
// brackets and terminated string literals, scanned outside comments and
// string bodies. It catches the common truncation and quoting mistakes;
// the sandbox harness remains the authority on full parsability.
func checkSyntax(code string) error {
	var stack []rune
	pairs := map[rune]rune{')': '(', ']': '[', '}': '{'}

	inTriple := false
	var tripleQuote rune

	lines := strings.Split(code, "\n")
	for lineNo, line := range lines {
		runes := []rune(line)
		i := 0

		if inTriple {
			closer := strings.Repeat(string(tripleQuote), 3)
			idx := strings.Index(line, closer)
			if idx < 0 {
				continue
			}
			inTriple = false
			i = len([]rune(line[:idx])) + 3
		}

		inString := false
		var quote rune

		for ; i < len(runes); i++ {
			ch := runes[i]

			if inString {
				if ch == '\\' {
					i++
					continue
				}
				if ch == quote {
					inString = false
				}
				continue
			}

			switch ch {
			case '#':
				i = len(runes)
			case '\'', '"':
				if i+2 < len(runes) && runes[i+1] == ch && runes[i+2] == ch {
					rest := string(runes[i+3:])
					closer := strings.Repeat(string(ch), 3)
					if idx := strings.Index(rest, closer); idx >= 0 {
						i += 3 + len([]rune(rest[:idx])) + 2
					} else {
						inTriple = true
						tripleQuote = ch
						i = len(runes)
					}
					continue
				}
				inString = true
				quote = ch
			case '(', '[', '{':
				stack = append(stack, ch)
			case ')', ']', '}':
				if len(stack) == 0 || stack[len(stack)-1] != pairs[ch] {
					return fmt.Errorf("unbalanced %q at line %d", string(ch), lineNo+1)
				}
				stack = stack[:len(stack)-1]
			}
		}

		if inString {
			return fmt.Errorf("unterminated string literal at line %d", lineNo+1)
		}
	}

	if inTriple {
		return fmt.Errorf("unterminated triple-quoted string at end of input")
	}
	if len(stack) > 0 {
		return fmt.Errorf("unclosed %q at end of input", string(stack[len(stack)-1]))
	}
	return nil
}
