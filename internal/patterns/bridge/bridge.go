// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     bridge
// Description: Bridge between book displays and output renderers
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package bridge

import (
	"fmt"
	"io"
)

// Renderer is the implementation side of the bridge
type Renderer interface {
	Render(title string)
}

// WebRenderer renders to a web page
type WebRenderer struct{ Out io.Writer }

// Render implements Renderer
func (r WebRenderer) Render(title string) { fmt.Fprintf(r.Out, "Web View: %s\n", title) }

// PDFRenderer renders to a PDF document
type PDFRenderer struct{ Out io.Writer }

// Render implements Renderer
func (r PDFRenderer) Render(title string) { fmt.Fprintf(r.Out, "PDF Document: %s\n", title) }

// MobileRenderer renders to a phone screen
type MobileRenderer struct{ Out io.Writer }

// Render implements Renderer
func (r MobileRenderer) Render(title string) { fmt.Fprintf(r.Out, "Mobile View: %s\n", title) }

// BookDisplay is the abstraction side; it shows books through any Renderer
type BookDisplay struct {
	Renderer Renderer
}

// Show renders title
func (d BookDisplay) Show(title string) {
	d.Renderer.Render(title)
}
