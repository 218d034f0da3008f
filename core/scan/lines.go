package scan

// lineIndex records the start offset of every line once per scan so the
// one-line lookaheads (heredoc boundaries, case pattern parens) don't
// rescan the source from the beginning.
type lineIndex struct {
	src    string
	starts []int
}

func newLineIndex(src string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{src: src, starts: starts}
}

// end returns the offset of the newline terminating the given 0-based
// line, or len(src) for the final line.
func (ix *lineIndex) end(line int) int {
	if line+1 < len(ix.starts) {
		return ix.starts[line+1] - 1
	}
	return len(ix.src)
}

// text returns the raw line without its newline.
func (ix *lineIndex) text(line int) string {
	if line < 0 || line >= len(ix.starts) {
		return ""
	}
	return ix.src[ix.starts[line]:ix.end(line)]
}
