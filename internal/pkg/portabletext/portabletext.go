// Package portabletext holds a minimal model of the content store's rich
// text format: an array of blocks whose text-bearing leaves carry the prose.
// Only what the derived-field computations need is modeled; unknown node
// kinds (images, code, embeds) decode with an empty children list and are
// skipped.
package portabletext

import (
	"fmt"
	"strings"
)

// WordsPerMinute is the reading speed assumed by reading-time estimation.
const WordsPerMinute = 200

// Span is a text-bearing leaf node inside a block.
type Span struct {
	Type string `json:"_type"`
	Text string `json:"text"`
}

// Block is one top-level rich text node. Non-"block" nodes contribute no
// text.
type Block struct {
	Type     string `json:"_type"`
	Style    string `json:"style,omitempty"`
	Children []Span `json:"children,omitempty"`
}

// Blocks is a rich text document.
type Blocks []Block

// PlainText concatenates the text of every span inside "block" nodes,
// separated by single spaces. Images, code and other embeds are ignored.
func PlainText(blocks Blocks) string {
	var parts []string
	for _, b := range blocks {
		if b.Type != "block" {
			continue
		}
		for _, child := range b.Children {
			if child.Text != "" {
				parts = append(parts, child.Text)
			}
		}
	}
	return strings.Join(parts, " ")
}

// WordCount counts whitespace-separated words in the document's plain text.
func WordCount(blocks Blocks) int {
	return len(strings.Fields(PlainText(blocks)))
}

// ReadingTime estimates reading time in whole minutes at WordsPerMinute,
// rounding up and never returning less than 1. Empty or malformed content
// is one minute.
func ReadingTime(blocks Blocks) int {
	return ReadingTimeAt(blocks, WordsPerMinute)
}

// ReadingTimeAt is ReadingTime with a custom reading speed.
func ReadingTimeAt(blocks Blocks, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = WordsPerMinute
	}
	words := WordCount(blocks)
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// FormatReadingTime renders a minute count for display, e.g. "5 min read".
func FormatReadingTime(minutes int) string {
	return fmt.Sprintf("%d min read", minutes)
}
