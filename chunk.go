package brief

import (
	"strings"
	"unicode/utf8"
)

// Chunk is a word-aligned slice of a longer text, sized to fit a
// provider's input ceiling. Chunks are ordered by Index and must be
// recombined in that order.
type Chunk struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Len returns the chunk length in characters.
func (c Chunk) Len() int {
	return utf8.RuneCountInString(c.Text)
}

// ChunkText splits text into chunks of at most maxLength characters.
//
// Words are accumulated greedily; a chunk is closed when adding the next
// word (plus a separating space) would exceed maxLength. Words are never
// split, so a single word longer than maxLength forms its own oversized
// chunk. Runs of whitespace are normalized to single spaces. Empty input
// returns no chunks.
func ChunkText(text string, maxLength int) []Chunk {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []Chunk
	var current []string
	length := 0 // words so far plus one separator per word

	for _, word := range words {
		n := utf8.RuneCountInString(word)
		if len(current) > 0 && length+n > maxLength {
			chunks = append(chunks, Chunk{Index: len(chunks), Text: strings.Join(current, " ")})
			current = []string{word}
			length = n + 1
			continue
		}
		current = append(current, word)
		length += n + 1
	}

	chunks = append(chunks, Chunk{Index: len(chunks), Text: strings.Join(current, " ")})
	return chunks
}

// WordCount returns the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
