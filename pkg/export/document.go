package export

import (
	"sort"
	"strconv"
	"strings"
)

// Document is a printable report: a header block, an optional summary block and headed tables.
type Document struct {
	Title     string
	Heading   string
	Subtitles []string
	Fields    []Field
	Summary   []SummaryItem
	Sections  []Section
	Styles    []StyleRule
}

// Field is a labelled header value such as the student name.
type Field struct {
	Label string
	Value string
}

// SummaryItem is one headline number in the summary block.
type SummaryItem struct {
	Label string
	Value string
	Class string
}

// Section is a headed table.
type Section struct {
	Name      string
	Heading   string
	Class     string
	Headers   []string
	Rows      []Row
	EmptyText string
}

// Row is a table row with an optional CSS class.
type Row struct {
	Class string
	Cells []Cell
}

// Cell is a table cell. Badge cells are rendered as a pill carrying Class.
type Cell struct {
	Value string
	Class string
	Badge bool
}

// StyleRule adds a CSS rule to the rendered HTML document.
type StyleRule struct {
	Selector     string
	Declarations string
	Color        RGB
}

// RGB is a colour used by non-HTML renderers to style cells sharing the rule's class.
type RGB struct {
	R, G, B int
}

// Text builds a plain cell.
func Text(value string) Cell {
	return Cell{Value: value}
}

// Styled builds a cell carrying a CSS class.
func Styled(value, class string) Cell {
	return Cell{Value: value, Class: class}
}

// Badge builds a pill-styled cell carrying a CSS class.
func Badge(value, class string) Cell {
	return Cell{Value: value, Class: class, Badge: true}
}

// HeadingOrTitle returns the visible heading, falling back to the title.
func (d Document) HeadingOrTitle() string {
	if d.Heading != "" {
		return d.Heading
	}
	return d.Title
}

// Datasets flattens every section into a tabular dataset keyed by section name.
func (d Document) Datasets() []Dataset {
	sets := make([]Dataset, 0, len(d.Sections))
	for i, section := range d.Sections {
		name := section.Name
		if name == "" {
			name = section.Heading
		}
		if name == "" {
			name = "Sheet" + strconv.Itoa(i+1)
		}
		set := Dataset{Name: name, Headers: append([]string(nil), section.Headers...)}
		for _, row := range section.Rows {
			values := make([]string, len(row.Cells))
			for j, cell := range row.Cells {
				values[j] = cell.Value
			}
			set.Rows = append(set.Rows, values)
		}
		sets = append(sets, set)
	}
	return sets
}

// colorFor resolves the colour of the first style rule whose selector names class.
func (d Document) colorFor(class string) (RGB, bool) {
	if class == "" {
		return RGB{}, false
	}
	for _, rule := range d.Styles {
		if rule.Color == (RGB{}) {
			continue
		}
		for _, selector := range strings.Split(rule.Selector, ",") {
			if strings.TrimSpace(selector) == "."+class {
				return rule.Color, true
			}
		}
	}
	return RGB{}, false
}

// stylesheet returns the document rules in a stable order.
func (d Document) stylesheet() string {
	rules := append([]StyleRule(nil), d.Styles...)
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Selector < rules[j].Selector })
	var b strings.Builder
	b.WriteString(baseStylesheet)
	for _, rule := range rules {
		if rule.Declarations == "" {
			continue
		}
		b.WriteString(rule.Selector)
		b.WriteString(" { ")
		b.WriteString(rule.Declarations)
		b.WriteString(" }\n")
	}
	return b.String()
}
