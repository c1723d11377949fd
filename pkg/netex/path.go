package netex

import "strings"

// ElementPath is the stack of currently open element names, most specific last.
type ElementPath struct {
	elements []string
}

func (p *ElementPath) Push(name string) {
	p.elements = append(p.elements, name)
}

func (p *ElementPath) Pop() string {
	if len(p.elements) == 0 {
		return ""
	}

	last := p.elements[len(p.elements)-1]
	p.elements = p.elements[:len(p.elements)-1]

	return last
}

func (p *ElementPath) Len() int {
	return len(p.elements)
}

// HasSuffix reports whether the innermost len(names) open elements equal names.
func (p *ElementPath) HasSuffix(names ...string) bool {
	if len(names) > len(p.elements) {
		return false
	}

	offset := len(p.elements) - len(names)
	for i, name := range names {
		if p.elements[offset+i] != name {
			return false
		}
	}

	return true
}

// Ancestor returns the element depth levels above the current one (0 is the
// current element) or an empty string if the path is not that deep.
func (p *ElementPath) Ancestor(depth int) string {
	index := len(p.elements) - 1 - depth
	if depth < 0 || index < 0 {
		return ""
	}

	return p.elements[index]
}

func (p *ElementPath) String() string {
	return strings.Join(p.elements, "/")
}
