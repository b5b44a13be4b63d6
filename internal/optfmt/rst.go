package optfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const noHelp = "No help available"

// RSTTitle returns title underlined with ch, the underline as wide as the title is displayed.
func RSTTitle(title string, ch rune) string {
	return title + "\n" + strings.Repeat(string(ch), runewidth.StringWidth(title))
}

// RSTSection renders an options section as reStructuredText. An empty
// section omits the section title and an empty doc omits the intro paragraph.
func RSTSection(section string, options []Option, doc string) string {
	var result []string
	if section != "" {
		result = append(result, RSTTitle(section, '='))
	}
	if doc != "" {
		result = append(result, "", doc, "")
	}
	for _, opt := range options {
		help := strings.TrimSpace(opt.Help)
		if help == "" {
			help = noHelp
		}
		result = append(result,
			RSTTitle(opt.Name, '-'),
			"",
			help,
			"",
			"Default: ``"+FormatValue(opt, opt.Value)+"``",
			"",
		)
	}
	return strings.Join(result, "\n")
}
