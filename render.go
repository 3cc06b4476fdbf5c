package hclust

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	branch = "─"
	vbar   = "│"
	corner = "└"
)

// Labeler maps an item index to its display label.
type Labeler interface {
	Label(index int) (string, error)
}

// LabelFunc adapts a plain function into a Labeler.
type LabelFunc func(index int) (string, error)

func (f LabelFunc) Label(index int) (string, error) { return f(index) }

// Alphabet labels item i with element i. Indices outside the slice yield
// ErrUnknownLabel.
type Alphabet []string

func (a Alphabet) Label(index int) (string, error) {
	if index < 0 || index >= len(a) {
		return "", fmt.Errorf("%w: %d (have %d labels)", ErrUnknownLabel, index, len(a))
	}
	return a[index], nil
}

// Letters returns n spreadsheet-style labels: A..Z, AA, AB, ...
func Letters(n int) Alphabet {
	out := make(Alphabet, n)
	for i := range out {
		var b []byte
		for k := i + 1; k > 0; k = (k - 1) / 26 {
			b = append(b, byte('A'+(k-1)%26))
		}
		for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
			b[l], b[r] = b[r], b[l]
		}
		out[i] = string(b)
	}
	return out
}

// FormatHeight renders a merge height as the shortest decimal that parses
// back to the same float64, without exponent and without a trailing ".0".
// 1.0 renders as "1", 2.5 as "2.5".
func FormatHeight(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// Lines renders t as a dendrogram, one string per output line. A leaf is
// its label. A merge puts its height label in front of the left subtree's
// first line and hangs the right subtree below it from a corner:
//
//	2───C
//	└─1─A
//	  └─B
//
// Errors from labels are returned wrapped.
func (t *Tree) Lines(labels Labeler) ([]string, error) {
	if t.IsLeaf() {
		label, err := labels.Label(t.index)
		if err != nil {
			return nil, fmt.Errorf("hclust: rendering leaf: %w", err)
		}
		return []string{label}, nil
	}

	left, err := t.left.Lines(labels)
	if err != nil {
		return nil, err
	}
	right, err := t.right.Lines(labels)
	if err != nil {
		return nil, err
	}

	width := 0
	for _, line := range left {
		width = max(width, utf8.RuneCountInString(line))
	}
	for _, line := range right {
		width = max(width, utf8.RuneCountInString(line))
	}

	label := FormatHeight(t.height)
	labelLen := utf8.RuneCountInString(label)

	out := make([]string, 0, len(left)+len(right))
	for i, line := range left {
		if i == 0 {
			out = append(out, label+branch+padLeft(line, width, branch))
		} else {
			out = append(out, padRight(vbar, labelLen, " ")+" "+padLeft(line, width, " "))
		}
	}
	for i, line := range right {
		if i == 0 {
			out = append(out, padRight(corner, labelLen, branch)+branch+padLeft(line, width, branch))
		} else {
			out = append(out, strings.Repeat(" ", labelLen)+" "+padLeft(line, width, " "))
		}
	}
	return out, nil
}

// Render returns the dendrogram as a single newline-terminated string.
func (t *Tree) Render(labels Labeler) (string, error) {
	lines, err := t.Lines(labels)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// padLeft right-justifies s in a field of width runes using fill.
func padLeft(s string, width int, fill string) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(fill, n) + s
}

// padRight left-justifies s in a field of width runes using fill.
func padRight(s string, width int, fill string) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(fill, n)
}
