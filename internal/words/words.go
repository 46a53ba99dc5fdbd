package words

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
)

// Configuration errors
var (
	ErrNoThemes      = errors.New("word table has no themes")
	ErrEmptyTheme    = errors.New("theme has no words")
	ErrBlankWord     = errors.New("theme contains a blank word")
	ErrDuplicateName = errors.New("theme declared twice")
)

// Theme is a named, ordered list of candidate secret words
type Theme struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// Table is the read-only theme -> words configuration the game draws from.
// Theme order is preserved; the first theme is the default selection.
type Table struct {
	themes []Theme
	index  map[string]int
}

// NewTable builds a table from themes in the given order
func NewTable(themes ...Theme) Table {
	t := Table{
		themes: make([]Theme, 0, len(themes)),
		index:  make(map[string]int, len(themes)),
	}
	for _, th := range themes {
		words := make([]string, len(th.Words))
		copy(words, th.Words)
		t.index[th.Name] = len(t.themes)
		t.themes = append(t.themes, Theme{Name: th.Name, Words: words})
	}
	return t
}

// Default returns the built-in word table
func Default() Table {
	return NewTable(
		Theme{Name: "Animal", Words: []string{"Octopus", "Elephant", "Kangaroo", "Penguin", "Tiger", "Dolphin", "Giraffe", "Camel"}},
		Theme{Name: "Food", Words: []string{"Pizza", "Sushi", "Taco", "Pancake", "Burger", "Ramen", "Salad", "Curry"}},
		Theme{Name: "Places", Words: []string{"Paris", "Beach", "Mountain", "Library", "Museum", "Desert", "Jungle", "Space"}},
		Theme{Name: "Objects", Words: []string{"Umbrella", "Laptop", "Backpack", "Guitar", "Camera", "Bicycle", "Clock", "Lantern"}},
		Theme{Name: "Sports", Words: []string{"Basketball", "Tennis", "Soccer", "Surfing", "Skateboard", "Baseball", "Archery", "Skiing"}},
		Theme{Name: "Professions", Words: []string{"Doctor", "Chef", "Astronaut", "Teacher", "Pilot", "Detective", "Engineer", "Artist"}},
		Theme{Name: "Movies", Words: []string{"Titanic", "Inception", "Frozen", "Jaws", "Avatar", "Rocky", "Matrix", "Toy Story"}},
	)
}

// Load reads a table from a JSON file holding an array of themes
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read word table: %w", err)
	}

	var themes []Theme
	if err := json.Unmarshal(data, &themes); err != nil {
		return Table{}, fmt.Errorf("decode word table %s: %w", path, err)
	}

	for i := 1; i < len(themes); i++ {
		for j := 0; j < i; j++ {
			if themes[i].Name == themes[j].Name {
				return Table{}, fmt.Errorf("%w: %q", ErrDuplicateName, themes[i].Name)
			}
		}
	}

	return NewTable(themes...), nil
}

// Validate reports configuration errors that make the table unusable
func (t Table) Validate() error {
	if len(t.themes) == 0 {
		return ErrNoThemes
	}
	for _, th := range t.themes {
		if len(th.Words) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyTheme, th.Name)
		}
		for _, w := range th.Words {
			if strings.TrimSpace(w) == "" {
				return fmt.Errorf("%w: %q", ErrBlankWord, th.Name)
			}
		}
	}
	return nil
}

// Themes returns the theme names in configured order
func (t Table) Themes() []string {
	names := make([]string, len(t.themes))
	for i, th := range t.themes {
		names[i] = th.Name
	}
	return names
}

// Catalog returns a copy of every theme with its words
func (t Table) Catalog() []Theme {
	out := make([]Theme, len(t.themes))
	for i, th := range t.themes {
		words := make([]string, len(th.Words))
		copy(words, th.Words)
		out[i] = Theme{Name: th.Name, Words: words}
	}
	return out
}

// HasTheme checks if the theme exists
func (t Table) HasTheme(theme string) bool {
	_, ok := t.index[theme]
	return ok
}

// Words returns the candidate words of a theme, nil if unknown
func (t Table) Words(theme string) []string {
	i, ok := t.index[theme]
	if !ok {
		return nil
	}
	words := make([]string, len(t.themes[i].Words))
	copy(words, t.themes[i].Words)
	return words
}

// Contains checks if word is one of theme's candidates
func (t Table) Contains(theme, word string) bool {
	i, ok := t.index[theme]
	if !ok {
		return false
	}
	for _, w := range t.themes[i].Words {
		if w == word {
			return true
		}
	}
	return false
}

// FirstTheme returns the default theme name
func (t Table) FirstTheme() string {
	if len(t.themes) == 0 {
		return ""
	}
	return t.themes[0].Name
}

// FirstWord returns the first word of a theme, empty if unknown or empty
func (t Table) FirstWord(theme string) string {
	i, ok := t.index[theme]
	if !ok || len(t.themes[i].Words) == 0 {
		return ""
	}
	return t.themes[i].Words[0]
}

// RandomWord picks a word from theme uniformly using pick(n) in [0, n)
func (t Table) RandomWord(theme string, pick func(n int) int) string {
	i, ok := t.index[theme]
	if !ok || len(t.themes[i].Words) == 0 {
		return ""
	}
	if pick == nil {
		pick = rand.IntN
	}
	words := t.themes[i].Words
	return words[pick(len(words))]
}
