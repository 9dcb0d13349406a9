// Copyright Speech Synthesis Lab, 2026. All rights reserved.

// Package render turns a snippet collection into a complete LaTeX document.
// Each snippet becomes one beamer frame; the frames are joined and
// substituted into the template's single %s slot.
package render

import (
	"fmt"
	"strings"

	"github.com/speechlab/slidegen/internal/snippet"
)

// framePattern is the fixed shape of one rendered snippet: the identifier is
// the frame title, the content the frame body. Content is inserted verbatim;
// characters meaningful to LaTeX pass through unescaped.
const framePattern = "\\begin{frame}\\frametitle{%s}\n\t%s\n\\end{frame}\n"

// Fragment renders one snippet entry as a beamer frame.
func Fragment(e snippet.Entry) string {
	return fmt.Sprintf(framePattern, e.ID, e.Content)
}

// Body renders every entry in collection order and joins the frames with a
// single newline.
func Body(col *snippet.Collection) string {
	frames := make([]string, 0, col.Len())
	for _, e := range col.Entries() {
		frames = append(frames, Fragment(e))
	}
	return strings.Join(frames, "\n")
}

// Document substitutes body into the template's one %s placeholder and
// returns the complete document text. The template may escape literal percent
// signs as %%; any other % directive, a missing placeholder, or a second
// placeholder is an error. Substitution is a single pass: a %s inside body
// is not expanded again.
func Document(template, body string) (string, error) {
	var b strings.Builder
	substituted := false

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(template) {
			return "", fmt.Errorf("template ends with a bare %%")
		}
		i++
		switch template[i] {
		case '%':
			b.WriteByte('%')
		case 's':
			if substituted {
				return "", fmt.Errorf("template has more than one %%s placeholder")
			}
			b.WriteString(body)
			substituted = true
		default:
			return "", fmt.Errorf("template has unsupported directive %%%c", template[i])
		}
	}

	if !substituted {
		return "", fmt.Errorf("template has no %%s placeholder")
	}
	return b.String(), nil
}

// Deck renders the collection into the template in one step.
func Deck(template string, col *snippet.Collection) (string, error) {
	doc, err := Document(template, Body(col))
	if err != nil {
		return "", fmt.Errorf("rendering deck: %w", err)
	}
	return doc, nil
}
