package resource

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const celebrityPrefix = "talk_"

// Celebrity is a persona the talk flow can impersonate. Key is the prompt
// file key, Name is extracted from the prompt's first line.
type Celebrity struct {
	Key  string
	Name string
}

// Celebrities lists the personas available under the prompts directory,
// sorted by key. The list is built from talk_*.txt files on every call so a
// new persona only needs a new prompt file.
func (l *Loader) Celebrities() ([]Celebrity, error) {
	entries, err := os.ReadDir(filepath.Join(l.root, "prompts"))
	if err != nil {
		return nil, err
	}

	var celebrities []Celebrity
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, celebrityPrefix) || !strings.HasSuffix(name, ".txt") {
			continue
		}

		key := strings.TrimSuffix(name, ".txt")
		prompt, err := l.Prompt(key)
		if err != nil {
			continue
		}

		line, _, _ := strings.Cut(prompt, "\n")
		celebrities = append(celebrities, Celebrity{Key: key, Name: ExtractName(line)})
	}

	sort.Slice(celebrities, func(i, j int) bool { return celebrities[i].Key < celebrities[j].Key })
	return celebrities, nil
}

// Celebrity resolves a single persona by its prompt key.
func (l *Loader) Celebrity(key string) (Celebrity, bool) {
	if !strings.HasPrefix(key, celebrityPrefix) {
		return Celebrity{}, false
	}

	prompt, err := l.Prompt(key)
	if err != nil {
		return Celebrity{}, false
	}

	line, _, _ := strings.Cut(prompt, "\n")
	return Celebrity{Key: key, Name: ExtractName(line)}, true
}

// ExtractName pulls the persona name out of a prompt's first line. The line
// opens with "Ты - " followed by the name, terminated by a comma or the end
// of the line. Offsets are in runes, the prompts are Cyrillic.
func ExtractName(line string) string {
	runes := []rune(line)
	if len(runes) <= 5 {
		return ""
	}

	rest := string(runes[5:])
	if idx := strings.Index(rest, ","); idx >= 0 {
		rest = rest[:idx]
	}
	return strings.TrimSpace(rest)
}
