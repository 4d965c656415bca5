package maze

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed layouts/*.lay
var layoutFS embed.FS

// Layouts returns the names of the embedded layouts, sorted.
func Layouts() []string {
	entries, _ := layoutFS.ReadDir("layouts")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".lay"))
	}
	sort.Strings(names)
	return names
}

// Layout parses the embedded layout called name, e.g. "tinyMaze".
// Matching ignores case, spaces and a ".lay" suffix.
func Layout(name string) (*Maze, error) {
	key := normalize(name)
	for _, n := range Layouts() {
		if normalize(n) == key {
			data, err := layoutFS.ReadFile(path.Join("layouts", n+".lay"))
			if err != nil {
				return nil, err
			}
			return Parse(string(data))
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
}

func normalize(name string) string {
	name = strings.TrimSuffix(strings.ToLower(name), ".lay")
	return strings.ReplaceAll(name, " ", "")
}
