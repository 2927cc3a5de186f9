// Package selector parses the compact tag#id.class selector strings used to
// describe an element.
//
// The grammar is
//
//	^([\w-]*)([#\w\d-_]*)?([.\w\d-_]*)?$
//
// matched case-insensitively. The first group is the tag and must not be
// empty. The second group, minus its leading '#', is the id. The third
// group, minus its leading '.', is split on '.' into the class list.
//
//	d, err := selector.Parse("div#main.card.wide")
//	// d.Tag == "div", d.ID == "main", d.ClassList == []string{"card", "wide"}
package selector
