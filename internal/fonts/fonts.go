package fonts

import (
	"os"
	"path/filepath"
	"strings"
)

// Exts are the file extensions treated as fonts.
var Exts = []string{".ttf", ".otf"}

// Preferred family names, tried in order.
var (
	UIFamilies   = []string{"Inter", "Roboto", "NotoSans", "OpenSans", "DejaVuSans"}
	MonoFamilies = []string{"JetBrainsMono", "RobotoMono", "FiraCode", "DejaVuSansMono", "SourceCodePro"}
)

// BaseDirs returns candidate font directories for dir: dir itself, then the same
// path two levels up for runs from a cmd/ subdirectory.
func BaseDirs(dir string) []string {
	if dir == "" {
		return nil
	}
	dirs := []string{dir}
	if !filepath.IsAbs(dir) {
		dirs = append(dirs, filepath.Join("..", "..", dir))
	}
	return dirs
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf").
// Paths use forward slashes. A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// FindFont searches dirs for a font whose path contains search (fuzzy: case, spaces,
// dashes and underscores ignored) and returns its full path. When several match, a
// "Regular" face wins. Mono faces are skipped unless search itself names a mono family.
func FindFont(dirs []string, search string) (string, error) {
	norm := normalizeForMatch(search)
	if norm == "" {
		return "", os.ErrNotExist
	}
	wantMono := strings.Contains(norm, "mono") || strings.Contains(norm, "code")
	var candidates []string
	for _, base := range dirs {
		list, err := ScanDir(base)
		if err != nil {
			continue
		}
		for _, rel := range list {
			relNorm := normalizeForMatch(rel)
			if !strings.Contains(relNorm, norm) {
				continue
			}
			if !wantMono && strings.Contains(relNorm, "mono") {
				continue
			}
			candidates = append(candidates, filepath.Join(base, filepath.FromSlash(rel)))
		}
	}
	if len(candidates) == 0 {
		return "", os.ErrNotExist
	}
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(filepath.Base(c)), "regular") {
			return c, nil
		}
	}
	return candidates[0], nil
}

// FindFirst returns the first family in families that FindFont resolves.
func FindFirst(dirs []string, families []string) (string, error) {
	for _, f := range families {
		if p, err := FindFont(dirs, f); err == nil {
			return p, nil
		}
	}
	return "", os.ErrNotExist
}
