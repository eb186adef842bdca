package katex

import (
	"strings"

	"github.com/arthur-debert/katexprobe/pkg/errors"
	"github.com/beevik/etree"
)

// Summary describes rendered markup
type Summary struct {
	Root      string
	RootClass string
	Elements  int
}

// Inspect parses markup leniently and counts its elements
func Inspect(markup string) (Summary, error) {
	if strings.TrimSpace(markup) == "" {
		return Summary{}, errors.New(errors.ErrInvalidInput, "empty markup")
	}

	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	if err := doc.ReadFromString(markup); err != nil {
		return Summary{}, errors.Wrap(err, errors.ErrInvalidInput, "failed to parse markup")
	}

	root := doc.Root()
	if root == nil {
		return Summary{}, errors.New(errors.ErrInvalidInput, "markup has no root element")
	}

	return Summary{
		Root:      root.Tag,
		RootClass: root.SelectAttrValue("class", ""),
		Elements:  countElements(root),
	}, nil
}

func countElements(el *etree.Element) int {
	n := 1
	for _, child := range el.ChildElements() {
		n += countElements(child)
	}
	return n
}
