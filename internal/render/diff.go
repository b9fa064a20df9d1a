package render

// Diff returns the shortest edit turning prev into next: delete runes from
// the end of prev, then append text.
func Diff(prev, next string) (deleteCount int, text string) {
	a, b := []rune(prev), []rune(next)
	common := 0
	for common < len(a) && common < len(b) && a[common] == b[common] {
		common++
	}
	return len(a) - common, string(b[common:])
}
