package export

import (
	"bytes"
	"encoding/xml"
	"strings"
)

const indent = "    "

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Formatter serializes a build event into the report read by the hook:
//
//	<src>
//	    <file>a.c</file>
//	    <depend>
//	        <item>a.h</item>
//	    </depend>
//	    <rebuilt>true</rebuilt>
//	</src>
//
// The depend block is omitted when there are no dependencies.
type Formatter struct {
	// Escape enables XML escaping of path text. Off by default, in which
	// case paths are written verbatim apart from line breaks.
	Escape bool
}

// FormatReport formats a report with the default Formatter.
func FormatReport(source string, deps []string, rebuilt bool) []byte {
	return Formatter{}.Format(source, deps, rebuilt)
}

// Format serializes source, deps and rebuilt.
func (f Formatter) Format(source string, deps []string, rebuilt bool) []byte {
	var b bytes.Buffer

	b.WriteString("<src>\n")
	f.element(&b, indent, "file", source)
	if len(deps) > 0 {
		b.WriteString(indent + "<depend>\n")
		for _, dep := range deps {
			f.element(&b, indent+indent, "item", dep)
		}
		b.WriteString(indent + "</depend>\n")
	}
	if rebuilt {
		f.element(&b, indent, "rebuilt", "true")
	} else {
		f.element(&b, indent, "rebuilt", "false")
	}
	b.WriteString("</src>\n")

	return b.Bytes()
}

func (f Formatter) element(b *bytes.Buffer, prefix, name, text string) {
	b.WriteString(prefix)
	b.WriteString("<" + name + ">")
	if f.Escape {
		// EscapeText also encodes line breaks as character references.
		_ = xml.EscapeText(b, []byte(text))
	} else {
		b.WriteString(lineBreaks.Replace(text))
	}
	b.WriteString("</" + name + ">\n")
}
