// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package appdata

import (
	"strings"

	"github.com/pdiddy/create-appdata/pkg/types"
)

const (
	// Preamble is the XML declaration at the top of every AppData file.
	Preamble = `<?xml version="1.0" encoding="UTF-8"?>`

	// MetadataLicense is the license of the generated metadata.
	MetadataLicense = "CC0"

	indent = "  "
)

// placeholderContact is rendered, commented out, when a row has no contact.
var placeholderContact = &Comment{
	Text:  "FIXME: change this to an upstream email address for spec updates",
	Lines: []string{"<updatecontact>someone_who_cares@upstream_project.org</updatecontact>"},
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

// Escape replaces the five XML special characters with entities. The
// replacement is a single pass, so entities it introduces are never escaped
// again.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Node is one item in an element tree.
type Node interface {
	render(b *strings.Builder, depth int)
}

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is an XML element. A leaf element renders on one line with its
// Text. A block element renders its Lines (as indented text) and then its
// Children between an opening and a closing tag on their own lines.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	Block    bool
	Lines    []string
	Children []Node
}

// Leaf returns a single-line element holding text.
func Leaf(name, text string, attrs ...Attr) *Element {
	return &Element{Name: name, Text: text, Attrs: attrs}
}

// Group returns an element whose children render on their own lines.
func Group(name string, children ...Node) *Element {
	return &Element{Name: name, Block: true, Children: children}
}

// Append adds children to e.
func (e *Element) Append(children ...Node) {
	e.Children = append(e.Children, children...)
}

// Render serializes e and its children, indenting two spaces per level.
func (e *Element) Render() string {
	var b strings.Builder
	e.render(&b, 0)
	return b.String()
}

func (e *Element) render(b *strings.Builder, depth int) {
	pad := strings.Repeat(indent, depth)
	b.WriteString(pad)
	b.WriteString("<" + e.Name)
	for _, a := range e.Attrs {
		b.WriteString(" " + a.Name + `="` + Escape(a.Value) + `"`)
	}
	b.WriteString(">")

	if !e.Block {
		b.WriteString(Escape(e.Text))
		b.WriteString("</" + e.Name + ">\n")
		return
	}

	b.WriteString("\n")
	for _, line := range e.Lines {
		b.WriteString(pad + indent + Escape(line) + "\n")
	}
	for _, c := range e.Children {
		c.render(b, depth+1)
	}
	b.WriteString(pad + "</" + e.Name + ">\n")
}

// Comment is an XML comment spanning several lines. Its content is
// written verbatim so it can hold commented-out markup.
type Comment struct {
	Text  string
	Lines []string
}

func (c *Comment) render(b *strings.Builder, depth int) {
	pad := strings.Repeat(indent, depth)
	b.WriteString(pad + "<!-- " + c.Text + "\n")
	for _, line := range c.Lines {
		b.WriteString(pad + line + "\n")
	}
	b.WriteString(pad + " -->\n")
}

// Document builds the <application> element tree for rec.
func Document(rec *types.AppDataRecord) *Element {
	app := Group("application",
		Leaf("id", rec.ID+".desktop", Attr{"type", "desktop"}),
		Leaf("metadata_license", MetadataLicense),
	)
	if rec.Name != "" {
		app.Append(Leaf("name", rec.Name))
	}
	if rec.Summary != "" {
		app.Append(Leaf("summary", rec.Summary))
	}

	desc := Group("description")
	for _, para := range rec.Description {
		desc.Append(&Element{Name: "p", Block: true, Lines: para})
	}
	app.Append(desc)

	if rec.Homepage != "" {
		app.Append(Leaf("url", rec.Homepage, Attr{"type", "homepage"}))
	}

	shots := Group("screenshots")
	for i, s := range rec.Screenshots {
		if i == 0 {
			shots.Append(Leaf("screenshot", s, Attr{"type", "default"}))
			continue
		}
		shots.Append(Leaf("screenshot", s))
	}
	app.Append(shots)

	if rec.UpdateContact != "" {
		app.Append(Leaf("updatecontact", rec.UpdateContact))
	} else {
		app.Append(placeholderContact)
	}

	if rec.ProjectGroup != "" {
		app.Append(Leaf("project_group", rec.ProjectGroup))
	}
	return app
}

// Marshal renders rec as a complete AppData file.
func Marshal(rec *types.AppDataRecord) []byte {
	return []byte(Preamble + "\n" + Document(rec).Render())
}
