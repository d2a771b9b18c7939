package trust

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverPattern is the glob matched against file base names during
// auto-discovery. Trust dumps exported by the collection scripts are always
// named <domain>_trusts.tsv.
const DiscoverPattern = "*_trusts.tsv"

// maxDiscoverDepth limits how deep below the starting directory the
// auto-discovery walk descends.
const maxDiscoverDepth = 3

// Discover walks root up to maxDiscoverDepth levels deep and returns every
// file whose base name matches DiscoverPattern, sorted for a stable report
// order. Unreadable subtrees are skipped rather than aborting the walk.
func Discover(root string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Permission errors etc: skip the subtree, keep walking.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		depth := strings.Count(rel, string(filepath.Separator))
		if d.IsDir() {
			if depth >= maxDiscoverDepth {
				return filepath.SkipDir
			}
			return nil
		}
		if ok, _ := filepath.Match(DiscoverPattern, d.Name()); ok {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(found)
	return found, nil
}
