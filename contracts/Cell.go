package contracts

const (
	DefaultColor           = "black"
	DefaultBackgroundColor = "white"
)

type CellStyle struct {
	Alignment       string `json:"alignment,omitempty"`
	FontFamily      string `json:"font_family,omitempty"`
	FontSize        int    `json:"font_size,omitempty"`
	Bold            *bool  `json:"bold,omitempty"`
	Italic          *bool  `json:"italic,omitempty"`
	Underline       *bool  `json:"underline,omitempty"`
	Color           string `json:"color,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
}

// ResolvedStyle is a CellStyle with every fallback applied
type ResolvedStyle struct {
	Alignment       string `json:"alignment"`
	FontFamily      string `json:"font_family"`
	FontSize        int    `json:"font_size"`
	Bold            bool   `json:"bold"`
	Italic          bool   `json:"italic"`
	Underline       bool   `json:"underline"`
	Color           string `json:"color"`
	BackgroundColor string `json:"background_color"`
}

// Resolve applies display defaults: black on white, flags off when unset or false.
func (s CellStyle) Resolve() ResolvedStyle {
	resolved := ResolvedStyle{
		Alignment:       s.Alignment,
		FontFamily:      s.FontFamily,
		FontSize:        s.FontSize,
		Bold:            s.Bold != nil && *s.Bold,
		Italic:          s.Italic != nil && *s.Italic,
		Underline:       s.Underline != nil && *s.Underline,
		Color:           s.Color,
		BackgroundColor: s.BackgroundColor,
	}

	if resolved.Color == "" {
		resolved.Color = DefaultColor
	}
	if resolved.BackgroundColor == "" {
		resolved.BackgroundColor = DefaultBackgroundColor
	}

	return resolved
}

// Merge overrides only the attributes set in patch
func (s CellStyle) Merge(patch CellStyle) CellStyle {
	if patch.Alignment != "" {
		s.Alignment = patch.Alignment
	}
	if patch.FontFamily != "" {
		s.FontFamily = patch.FontFamily
	}
	if patch.FontSize != 0 {
		s.FontSize = patch.FontSize
	}
	if patch.Bold != nil {
		s.Bold = patch.Bold
	}
	if patch.Italic != nil {
		s.Italic = patch.Italic
	}
	if patch.Underline != nil {
		s.Underline = patch.Underline
	}
	if patch.Color != "" {
		s.Color = patch.Color
	}
	if patch.BackgroundColor != "" {
		s.BackgroundColor = patch.BackgroundColor
	}
	return s
}

type CellState struct {
	Id             string    `json:"id"`
	Content        string    `json:"content"`
	Formula        string    `json:"formula,omitempty"`
	DependentCells []string  `json:"dependent_cells,omitempty"`
	Style          CellStyle `json:"style"`
}
