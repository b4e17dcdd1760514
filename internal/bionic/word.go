// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bionic implements the bionic-reading text transform: the leading
// characters of each word are wrapped in Markdown bold markers to give the
// eye a fixation anchor.
//
// The transform is not idempotent. Bold markers inserted by one run (or
// already present in the source) count as ordinary punctuation on the next
// run, so reprocessing output can stack markers: "**bold**" becomes
// "****bo**ld**". Callers are expected to keep originals and derivatives
// apart rather than rely on the transform detecting its own output.
package bionic

import "regexp"

// wordPattern matches a bolding candidate: an optional run of leading
// punctuation, one contiguous run of word characters (Unicode letters,
// digits, underscore), and an optional run of trailing punctuation. Tokens
// with internal punctuation, such as hyphenated compounds or contractions,
// do not match and pass through unchanged.
var wordPattern = regexp.MustCompile(`^([^\p{L}\p{N}_]*)([\p{L}\p{N}_]+)([^\p{L}\p{N}_]*)$`)

// Bold-prefix tiers by core word length, counted in runes.
const (
	shortMax   = 3 // words this short stay unbolded
	mediumMax  = 7
	mediumBold = 2
	longBold   = 3
)

// Word applies the bolding rule to a single whitespace-free token. Tokens
// that do not match wordPattern (pure punctuation, empty strings, words
// with internal punctuation) are returned unchanged.
func Word(token string) string {
	m := wordPattern.FindStringSubmatch(token)
	if m == nil {
		return token
	}
	leading, core, trailing := m[1], m[2], m[3]

	runes := []rune(core)
	n := boldCount(len(runes))
	if n == 0 {
		return token
	}
	return leading + "**" + string(runes[:n]) + "**" + string(runes[n:]) + trailing
}

// boldCount maps a core word length to the number of leading runes to bold.
func boldCount(length int) int {
	switch {
	case length <= shortMax:
		return 0
	case length <= mediumMax:
		return mediumBold
	default:
		return longBold
	}
}
