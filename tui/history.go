package tui

// History is a ring buffer of submitted lines with up/down recall.
// back counts steps behind the newest entry; zero means live input.
type History struct {
	entries []string
	limit   int
	back    int
}

// NewHistory creates a history buffer holding at most limit lines.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Push records a submitted line and drops recall back to live input.
// Consecutive duplicates collapse into one entry.
func (h *History) Push(line string) {
	h.back = 0
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	if len(h.entries) > h.limit {
		h.entries = h.entries[1:]
	}
}

// Prev steps one entry older and returns it. At the oldest entry it
// stays put; with no history it reports false.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.back < len(h.entries) {
		h.back++
	}
	return h.entries[len(h.entries)-h.back], true
}

// Next steps one entry newer. Past the newest entry it reports false
// and recall drops back to live input.
func (h *History) Next() (string, bool) {
	if h.back <= 1 {
		h.back = 0
		return "", false
	}
	h.back--
	return h.entries[len(h.entries)-h.back], true
}
