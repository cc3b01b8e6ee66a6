package scene

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// inputExtensions lists the scene file extensions Discover recognizes, one
// per parser in pkg/loaders.
var inputExtensions = []string{".obj", ".pat", ".los", ".for"}

// FileInfo describes one discovered scene input file.
type FileInfo struct {
	Path        string // full path to the file
	Name        string // filename without directory or extension
	Format      string // ".obj", ".pat", ".los", or ".for"
	Description string // the file's leading "#" comment line, if any
}

// Discover scans dir for recognized scene input files and returns them
// sorted by name. A file whose extension isn't in inputExtensions is
// skipped rather than erroring, since scene directories commonly hold
// other files (readmes, generated output) alongside inputs.
func Discover(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !recognized(ext) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		files = append(files, FileInfo{
			Path:        path,
			Name:        strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			Format:      ext,
			Description: firstComment(path),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

func recognized(ext string) bool {
	for _, e := range inputExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// firstComment returns the text of a file's first "#" comment line, or ""
// if the file can't be read or doesn't start with one.
func firstComment(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimPrefix(line, "#"))
		}
		return ""
	}
	return ""
}
