package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Base        lipgloss.Style
	Status      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabDisabled lipgloss.Style
	Facet       lipgloss.Style
	FacetFocus  lipgloss.Style
	Empty       lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
	Panel       lipgloss.Style
	PopupBox    lipgloss.Style
	PopupTitle  lipgloss.Style
	Selected    lipgloss.Style
	// Detail JSON
	JSONKey    lipgloss.Style
	JSONString lipgloss.Style
	JSONNumber lipgloss.Style
	JSONBool   lipgloss.Style
	JSONNull   lipgloss.Style
	JSONPunct  lipgloss.Style
	// Accents for status-like facet values.
	Value map[string]lipgloss.Style
}

func NewStyles(dark bool) Styles {
	s := Styles{}
	if dark {
		s.Base = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		s.TabActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
		s.TabInactive = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		s.TabDisabled = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("238"))
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		s.PopupBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(1, 2)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
		s.FacetFocus = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
		s.JSONKey = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
		s.JSONString = lipgloss.NewStyle().Foreground(lipgloss.Color("150"))
		s.JSONNumber = lipgloss.NewStyle().Foreground(lipgloss.Color("215"))
	} else {
		s.Base = lipgloss.NewStyle()
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.TabActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.TabInactive = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.TabDisabled = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("250"))
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.PopupBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(1, 2)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.FacetFocus = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("130"))
		s.JSONKey = lipgloss.NewStyle().Foreground(lipgloss.Color("25"))
		s.JSONString = lipgloss.NewStyle().Foreground(lipgloss.Color("28"))
		s.JSONNumber = lipgloss.NewStyle().Foreground(lipgloss.Color("166"))
	}
	s.Facet = s.Help
	s.Empty = lipgloss.NewStyle().Italic(true).Padding(1, 2).Inherit(s.Help)
	s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	s.Panel = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(lipgloss.Color("240"))
	s.Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220"))
	s.JSONBool = lipgloss.NewStyle().Foreground(lipgloss.Color("177"))
	s.JSONNull = lipgloss.NewStyle().Faint(true)
	s.JSONPunct = s.Help
	s.Value = map[string]lipgloss.Style{
		"active":      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		"landed":      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		"boarding":    lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		"delayed":     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		"maintenance": lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		"cancelled":   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		"inactive":    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
	return s
}
