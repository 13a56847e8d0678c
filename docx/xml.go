package docx

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// XML namespaces used in DOCX files
const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

// isW reports whether el is the WordprocessingML element with the given local name.
// Detached copies have lost their namespace declarations, so a bare "w" prefix
// is accepted as well.
func isW(el *etree.Element, local string) bool {
	if el == nil || el.Tag != local {
		return false
	}
	uri := el.NamespaceURI()
	return uri == nsW || (uri == "" && el.Space == "w")
}

// children returns the direct child elements of el with the given local name.
func children(el *etree.Element, local string) []*etree.Element {
	if el == nil {
		return nil
	}
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if isW(c, local) {
			out = append(out, c)
		}
	}
	return out
}

// child returns the first direct child of el with the given local name.
func child(el *etree.Element, local string) *etree.Element {
	if el == nil {
		return nil
	}
	for _, c := range el.ChildElements() {
		if isW(c, local) {
			return c
		}
	}
	return nil
}

// qualify builds a tag in the same namespace prefix as ref.
func qualify(ref *etree.Element, local string) string {
	if ref == nil || ref.Space == "" {
		return local
	}
	return ref.Space + ":" + local
}

// newElement creates a detached element in ref's namespace prefix.
func newElement(ref *etree.Element, local string) *etree.Element {
	return etree.NewElement(qualify(ref, local))
}

// attrVal returns the value of the attribute with the given local name.
func attrVal(el *etree.Element, local string) (string, bool) {
	if el == nil {
		return "", false
	}
	for _, a := range el.Attr {
		if a.Key == local {
			return a.Value, true
		}
	}
	return "", false
}

// setAttr sets a w-prefixed attribute, replacing any existing one with the same local name.
func setAttr(el *etree.Element, local, value string) {
	for i := range el.Attr {
		if el.Attr[i].Key == local {
			el.Attr[i].Value = value
			return
		}
	}
	el.CreateAttr(qualify(el, local), value)
}

// removeAttr removes every attribute with the given local name.
func removeAttr(el *etree.Element, local string) {
	kept := el.Attr[:0]
	for _, a := range el.Attr {
		if a.Key != local {
			kept = append(kept, a)
		}
	}
	el.Attr = kept
}

// removeChildren removes the direct children of el with the given local names.
func removeChildren(el *etree.Element, locals ...string) int {
	removed := 0
	for _, c := range el.ChildElements() {
		for _, local := range locals {
			if isW(c, local) {
				el.RemoveChild(c)
				removed++
				break
			}
		}
	}
	return removed
}

// insertAfter inserts el directly after ref in ref's parent.
func insertAfter(ref, el *etree.Element) {
	ref.Parent().InsertChildAt(ref.Index()+1, el)
}

// isOff reports whether an OOXML on/off value switches the property off.
func isOff(val string) bool {
	switch strings.ToLower(val) {
	case "0", "false", "off":
		return true
	}
	return false
}

// atoiDefault parses s, returning def when it is not a positive integer.
func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}
