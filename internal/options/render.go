package options

import (
	"fmt"
	"io"
	"strings"

	"github.com/r9s-ai/optdoc/internal/optfmt"
)

// RST renders every section of c as reStructuredText, sections separated by a blank line.
func (c *Catalog) RST() (string, error) {
	parts := make([]string, 0, len(c.Sections))
	for _, s := range c.Sections {
		opts, err := s.Resolve()
		if err != nil {
			return "", err
		}
		parts = append(parts, optfmt.RSTSection(s.Name, opts, strings.TrimSpace(s.Doc)))
	}
	if len(parts) == 0 {
		return "", nil
	}
	out := strings.Join(parts, "\n")
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

// WriteINI writes c as an INI configuration template.
func (c *Catalog) WriteINI(w io.Writer) error {
	for i, s := range c.Sections {
		opts, err := s.Resolve()
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := optfmt.FormatSection(w, strings.ToUpper(s.Name), opts, strings.TrimSpace(s.Doc)); err != nil {
			return fmt.Errorf("write section %q: %w", s.Name, err)
		}
	}
	return nil
}
