package directory

import "strings"

// SplitGenres turns the stored comma separated genres into a list.  Blank
// entries are dropped and an empty input yields an empty, non-nil list.
func SplitGenres(s string) []string {
	out := []string{}
	for _, g := range strings.Split(s, ",") {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

// JoinGenres is the inverse of SplitGenres.
func JoinGenres(genres []string) string {
	return strings.Join(SplitGenres(strings.Join(genres, ",")), ",")
}

// mergeGenres adds the genres of raw to dst, skipping ones already seen.
func mergeGenres(dst []string, seen map[string]bool, raw string) []string {
	for _, g := range SplitGenres(raw) {
		k := strings.ToLower(g)
		if seen[k] {
			continue
		}
		seen[k] = true
		dst = append(dst, g)
	}
	return dst
}
