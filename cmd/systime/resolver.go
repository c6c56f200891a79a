package main

import (
	"os"
	"path/filepath"
	"strings"
)

// caseResolver is the touch command's path corrector: it looks for a
// case insensitive match of the final path element in the parent
// directory. The parent itself must resolve exactly.
type caseResolver struct{}

func (caseResolver) Find(path string, mustExist bool) (string, bool) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if !strings.EqualFold(entry.Name(), base) {
			continue
		}
		located := filepath.Join(dir, entry.Name())
		if mustExist {
			if _, err := os.Lstat(located); err != nil {
				continue
			}
		}
		return located, true
	}
	return "", false
}
