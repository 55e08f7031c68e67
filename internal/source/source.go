// Package source loads the keyed items shown by the list viewer.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Item is one logical list entry
type Item struct {
	Key  string
	Text string
}

// FromFile reads one item per line of the file at path
func FromFile(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	items, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return items, nil
}

// FromReader reads one item per line. Keys are the 1-based line numbers.
func FromReader(r io.Reader) ([]Item, error) {
	var items []Item
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		items = append(items, Item{
			Key:  fmt.Sprintf("L%d", len(items)+1),
			Text: strings.TrimRight(scanner.Text(), "\r"),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var words = strings.Fields(`virtual lists keep only a small window of items alive while the
scrollbar still behaves as if every row were rendered so long logs stay responsive`)

// Generate builds n deterministic items of varying length so wrapped
// rendering produces rows of different heights.
func Generate(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		count := 3 + (i*7)%23
		if i%11 == 0 {
			count += 40
		}
		parts := make([]string, count)
		for j := range parts {
			parts[j] = words[(i+j)%len(words)]
		}
		items[i] = Item{
			Key:  fmt.Sprintf("G%d", i),
			Text: fmt.Sprintf("#%d %s", i, strings.Join(parts, " ")),
		}
	}
	return items
}

// Keys returns the item keys in order
func Keys(items []Item) []string {
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = it.Key
	}
	return keys
}
