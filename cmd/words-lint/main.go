// Validates a words JSON file: lowercase letters (spaces allowed inside
// multi-word entries), non-empty clues, no duplicates.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

var wordRe = regexp.MustCompile(`^[a-z]+( [a-z]+)*$`)

type jsonWord struct {
	Name string `json:"name"`
	Clue string `json:"clue"`
}

func main() {
	path := "./words.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("%s: read error: %v\n", path, err)
		os.Exit(1)
	}

	var entries []jsonWord
	if err := json.Unmarshal(data, &entries); err != nil {
		fmt.Printf("%s: parse error: %v\n", path, err)
		os.Exit(1)
	}

	exitCode := 0
	seen := make(map[string]int)
	for i, entry := range entries {
		if !wordRe.MatchString(entry.Name) {
			fmt.Printf("%s: entry %d: word %q must be lowercase letters\n", path, i+1, entry.Name)
			exitCode = 1
		}
		if entry.Clue == "" {
			fmt.Printf("%s: entry %d: word %q has an empty clue\n", path, i+1, entry.Name)
			exitCode = 1
		}
		if prev, dup := seen[entry.Name]; dup {
			fmt.Printf("%s: entry %d: word %q duplicates entry %d\n", path, i+1, entry.Name, prev)
			exitCode = 1
		}
		seen[entry.Name] = i + 1
	}

	if exitCode == 0 {
		fmt.Printf("%s: OK (%d words)\n", path, len(entries))
	}
	os.Exit(exitCode)
}
