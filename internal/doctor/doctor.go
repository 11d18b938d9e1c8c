// Package doctor renders diagnostic sections for debugging rvmkit and
// the RVM installation it talks to.
package doctor

import (
	"fmt"
	"io"
	"strings"

	"github.com/rubyops/rvmkit/internal/ui"
)

// Section is one titled block of diagnostic output.
type Section interface {
	Name() string
	// Print writes the section body. An error stands in for the body;
	// it never stops the other sections.
	Print(w io.Writer) error
}

// Registry collects sections and renders them in registration order.
type Registry struct {
	sections []Section
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(s Section) {
	r.sections = append(r.sections, s)
}

// Run prints every section to w: an underlined title, the body, a blank
// separator. A section that fails reports its error inline and the run
// continues.
func (r *Registry) Run(w io.Writer) {
	for _, s := range r.sections {
		title := s.Name()
		fmt.Fprintln(w, ui.Bold(title))
		fmt.Fprintln(w, ui.Dim(strings.Repeat("─", len(title))))
		if err := s.Print(w); err != nil {
			fmt.Fprintf(w, "%s %v\n", ui.FailTag(), err)
		}
		fmt.Fprintln(w)
	}
}
