// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package appdata

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const tabSize = 8

// Paragraphs splits a description field into paragraphs of wrapped lines.
// Paragraphs are separated by '|'. Within a paragraph newlines become
// spaces, double spaces are collapsed once, and every ". " ends a sentence;
// each sentence is wrapped to width on its own.
func Paragraphs(text string, width int) [][]string {
	var paras [][]string
	for _, para := range strings.Split(text, "|") {
		para = strings.ReplaceAll(para, "\n", " ")
		para = strings.ReplaceAll(para, "  ", " ")
		para = strings.ReplaceAll(para, ". ", ".\n")

		lines := []string{}
		for _, sentence := range strings.Split(para, "\n") {
			lines = append(lines, Wrap(sentence, width)...)
		}
		paras = append(paras, lines)
	}
	return paras
}

// Wrap breaks text into lines of at most width characters. Whitespace is
// normalized to single-character spaces (tabs expand to the next multiple
// of eight columns), lines are filled greedily, whitespace is dropped at the
// end of every line and the start of all but the first, and words longer
// than width are split. Text that is empty or all whitespace yields nil.
func Wrap(text string, width int) []string {
	chunks := splitChunks(normalizeSpace(text))

	var lines []string
	for len(chunks) > 0 {
		var cur []string
		curLen := 0

		if isBlank(chunks[0]) && len(lines) > 0 {
			chunks = chunks[1:]
		}

		for len(chunks) > 0 {
			n := utf8.RuneCountInString(chunks[0])
			if curLen+n > width {
				break
			}
			cur = append(cur, chunks[0])
			curLen += n
			chunks = chunks[1:]
		}

		if len(chunks) > 0 && utf8.RuneCountInString(chunks[0]) > width {
			var head string
			head, chunks[0] = breakLongWord(chunks[0], width, curLen)
			if head != "" {
				cur = append(cur, head)
			}
			if chunks[0] == "" {
				chunks = chunks[1:]
			}
		}

		if len(cur) > 0 && isBlank(cur[len(cur)-1]) {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 0 {
			lines = append(lines, strings.Join(cur, ""))
		}
	}
	return lines
}

// breakLongWord splits chunk so its head fits the space left on the line,
// preferring to break just after a hyphen inside that space.
func breakLongWord(chunk string, width, curLen int) (string, string) {
	space := width - curLen
	if width < 1 {
		space = 1
	}
	if space <= 0 {
		return "", chunk
	}

	runes := []rune(chunk)
	end := space
	if hyphen := lastIndexRune(runes[:space], '-'); hyphen > 0 && hasNonHyphen(runes[:hyphen]) {
		end = hyphen + 1
	}
	return string(runes[:end]), string(runes[end:])
}

// normalizeSpace expands tabs and maps every other whitespace rune to a space.
func normalizeSpace(text string) string {
	var b strings.Builder
	col := 0
	for _, r := range text {
		switch {
		case r == '\t':
			n := tabSize - col%tabSize
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case r == '\n' || r == '\r':
			b.WriteByte(' ')
			col = 0
		case unicode.IsSpace(r):
			b.WriteByte(' ')
			col++
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// splitChunks splits text into alternating runs of spaces and words.
// Hyphenated words are split after each hyphen that joins two letters on
// the left to a letter on the right, e.g. "well-known" -> "well-", "known".
func splitChunks(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	var chunks []string
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i == len(runes) {
			chunks = append(chunks, string(runes[start:i]))
			break
		}
		prevSpace := runes[i-1] == ' '
		if prevSpace != (runes[i] == ' ') || (!prevSpace && hyphenBreak(runes, i)) {
			chunks = append(chunks, string(runes[start:i]))
			start = i
		}
	}
	return chunks
}

// hyphenBreak reports whether a word may break between runes[i-1] and runes[i].
func hyphenBreak(runes []rune, i int) bool {
	if runes[i-1] != '-' || i < 3 {
		return false
	}
	return unicode.IsLetter(runes[i-2]) && unicode.IsLetter(runes[i-3]) && unicode.IsLetter(runes[i])
}

func isBlank(s string) bool {
	return strings.TrimLeft(s, " ") == ""
}

func lastIndexRune(runes []rune, r rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == r {
			return i
		}
	}
	return -1
}

func hasNonHyphen(runes []rune) bool {
	for _, r := range runes {
		if r != '-' {
			return true
		}
	}
	return false
}
