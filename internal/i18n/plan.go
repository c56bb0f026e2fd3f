package i18n

import (
	"regexp"
	"strings"
)

// markupPattern matches an opening angle bracket eventually followed by a
// closing one.
var markupPattern = regexp.MustCompile(`<[^>]+>`)

// Op is the kind of rewrite an element receives.
type Op int

const (
	// OpSkip leaves the element untouched (key missing from the catalog).
	OpSkip Op = iota
	// OpReplaceMarkup replaces the whole content with parsed markup.
	// Element children are discarded.
	OpReplaceMarkup
	// OpReplaceTextNodes rewrites direct text nodes in place and keeps every
	// element child where it is.
	OpReplaceTextNodes
	// OpReplaceText replaces the whole content with a single text node.
	OpReplaceText
)

func (o Op) String() string {
	switch o {
	case OpSkip:
		return "skip"
	case OpReplaceMarkup:
		return "replace-markup"
	case OpReplaceTextNodes:
		return "replace-text-nodes"
	case OpReplaceText:
		return "replace-text"
	default:
		return "unknown"
	}
}

// NodeShape describes the parts of an element the planner cares about.
type NodeShape struct {
	// Texts holds the data of each direct text-node child, in order.
	Texts []string
	// Elements counts direct element children (icons, nested controls).
	Elements int
}

// Instruction tells the DOM adapter what to write.
type Instruction struct {
	Op   Op
	Text string
	// TextNodes holds the new data for each entry of NodeShape.Texts when Op
	// is OpReplaceTextNodes.
	TextNodes []string
}

// HasMarkup reports whether a translation carries inline markup.
func HasMarkup(text string) bool {
	return markupPattern.MatchString(text)
}

// Plan decides how a translatable element is rewritten. It is a pure
// function of the translation and the element's current shape.
func Plan(text string, found bool, shape NodeShape) Instruction {
	switch {
	case !found:
		return Instruction{Op: OpSkip}
	case HasMarkup(text):
		return Instruction{Op: OpReplaceMarkup, Text: text}
	case shape.Elements > 0:
		return Instruction{Op: OpReplaceTextNodes, Text: text, TextNodes: planTextNodes(text, shape.Texts)}
	default:
		return Instruction{Op: OpReplaceText, Text: text}
	}
}

// planTextNodes places the translation in the first text node that carries
// visible text and empties the other visible ones. Whitespace-only nodes keep
// their layout whitespace. If no node carries visible text the first one
// receives the translation.
//
// The translation is written once per element, not once per text node: an
// element such as "<svg/> Generate <b>!</b> now" would otherwise show the
// label twice. Repeated applications converge because the emptied nodes stay
// invisible.
func planTextNodes(text string, texts []string) []string {
	out := make([]string, len(texts))
	target := -1
	for i, t := range texts {
		if strings.TrimSpace(t) != "" {
			target = i
			break
		}
	}
	if target < 0 && len(texts) > 0 {
		target = 0
	}
	for i, t := range texts {
		switch {
		case i == target:
			out[i] = text
		case strings.TrimSpace(t) == "":
			out[i] = t
		default:
			out[i] = ""
		}
	}
	return out
}
