// Package ui prints human-facing CLI output to stderr.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/papapumpkin/chronon/internal/ansi"
	"github.com/papapumpkin/chronon/internal/scene"
)

// Printer writes styled status lines for the CLI commands.
type Printer struct {
	w io.Writer
}

// New returns a Printer that writes to stderr.
func New() *Printer {
	return &Printer{w: os.Stderr}
}

// NewWriter returns a Printer that writes to w instead of stderr.
func NewWriter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Banner prints the product name.
func (p *Printer) Banner() {
	fmt.Fprintln(p.w, ansi.Bold+ansi.Cyan+"├┼┤ CHRONON"+ansi.Reset+ansi.Dim+"  timeline editor"+ansi.Reset)
}

// Error prints msg as an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, ansi.Red+ansi.Bold+"error: "+ansi.Reset+"%s\n", msg)
}

// Warn prints msg as a warning line.
func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.w, ansi.Yellow+ansi.Bold+"⚠ "+ansi.Reset+"%s\n", msg)
}

// Info prints msg dimmed.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.w, ansi.Dim+"%s"+ansi.Reset+"\n", msg)
}

// ValidateResult reports the outcome of validating a scene.
func (p *Printer) ValidateResult(sc *scene.Scene, errs []error) {
	tracks, items := len(sc.Tracks), sc.Items()
	if len(errs) == 0 {
		fmt.Fprintf(p.w, ansi.Green+ansi.Bold+"✓ scene %q"+ansi.Reset+": %d track(s), %d item(s), no errors\n",
			sc.Meta.Name, tracks, items)
		return
	}
	fmt.Fprintf(p.w, ansi.Red+ansi.Bold+"✗ scene %q"+ansi.Reset+": %d error(s):\n", sc.Meta.Name, len(errs))
	for _, e := range errs {
		fmt.Fprintf(p.w, "  "+ansi.Red+"• "+ansi.Reset+"%s\n", e.Error())
	}
}

// SceneSummary lists the scene's range and lanes.
func (p *Printer) SceneSummary(sc *scene.Scene) {
	fmt.Fprintf(p.w, ansi.Bold+ansi.Cyan+"scene: %s"+ansi.Reset+"\n", sc.Meta.Name)
	fmt.Fprintf(p.w, "range: [%g, %g)\n", sc.Meta.StartTime, sc.Meta.EndTime)
	for i, tr := range sc.Tracks {
		fmt.Fprintf(p.w, "  "+ansi.Magenta+"%d"+ansi.Reset+" %-12s "+ansi.Dim+"%d item(s)"+ansi.Reset+"\n", i, tr.Name, len(tr.Items))
	}
}

// JournalStarted notes where edit events are being recorded.
func (p *Printer) JournalStarted(path, session string) {
	fmt.Fprintf(p.w, ansi.Blue+"◆ journal"+ansi.Reset+" %s "+ansi.Dim+"(session %s)"+ansi.Reset+"\n", path, session)
}
