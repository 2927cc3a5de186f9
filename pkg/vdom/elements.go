package vdom

// elementFlags describe how an element participates in serialization.
type elementFlags uint8

const (
	flagVoid   elementFlags = 1 << iota // no content and no end tag
	flagInline                          // phrasing content, kept on one line
)

var elementTable = map[string]elementFlags{
	"area": flagVoid, "base": flagVoid, "col": flagVoid, "embed": flagVoid,
	"hr": flagVoid, "img": flagVoid, "input": flagVoid, "link": flagVoid,
	"meta": flagVoid, "param": flagVoid, "source": flagVoid, "track": flagVoid,

	"br":  flagVoid | flagInline,
	"wbr": flagVoid | flagInline,

	"a": flagInline, "abbr": flagInline, "b": flagInline, "bdi": flagInline,
	"bdo": flagInline, "cite": flagInline, "code": flagInline, "data": flagInline,
	"dfn": flagInline, "em": flagInline, "i": flagInline, "kbd": flagInline,
	"label": flagInline, "mark": flagInline, "q": flagInline, "s": flagInline,
	"samp": flagInline, "small": flagInline, "span": flagInline,
	"strong": flagInline, "sub": flagInline, "sup": flagInline,
	"time": flagInline, "u": flagInline, "var": flagInline,
}

// IsVoidElement reports whether tag never has children or an end tag.
func IsVoidElement(tag string) bool {
	return elementTable[tag]&flagVoid != 0
}

// IsInlineElement reports whether tag is phrasing content.
func IsInlineElement(tag string) bool {
	return elementTable[tag]&flagInline != 0
}
