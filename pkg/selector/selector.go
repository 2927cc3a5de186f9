package selector

import (
	"regexp"
	"strings"

	"github.com/vango-dev/hyperflex/internal/errors"
)

// pattern splits a selector into tag, #id and .class.class runs.
var pattern = regexp.MustCompile(`(?i)^([\w-]*)([#\w\d-_]*)?([.\w\d-_]*)?$`)

// Descriptor is the parsed form of a selector.
type Descriptor struct {
	Tag       string
	ID        string
	ClassList []string
}

// String re-encodes the descriptor as tag#id.class1.class2.
func (d Descriptor) String() string {
	var b strings.Builder
	b.WriteString(d.Tag)
	if d.ID != "" {
		b.WriteByte('#')
		b.WriteString(d.ID)
	}
	for _, c := range d.ClassList {
		b.WriteByte('.')
		b.WriteString(c)
	}
	return b.String()
}

// Parse parses a selector of the form tag#id.class1.class2.
// The id and class segments are optional; the tag is not.
func Parse(selector string) (Descriptor, error) {
	m := pattern.FindStringSubmatch(selector)
	if m == nil || m[1] == "" {
		return Descriptor{}, errors.New("E002").
			WithDetailf("`tag` should not be empty, %q given", selector)
	}

	d := Descriptor{Tag: m[1], ClassList: []string{}}
	if m[2] != "" {
		d.ID = m[2][1:]
	}
	if m[3] != "" {
		d.ClassList = strings.Split(m[3][1:], ".")
	}
	return d, nil
}

// MustParse is like Parse but panics if the selector is invalid.
func MustParse(selector string) Descriptor {
	d, err := Parse(selector)
	if err != nil {
		panic(err)
	}
	return d
}
