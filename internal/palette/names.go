package palette

// Names maps slots to display labels. Labels carry no meaning for the
// engine.
type Names map[SlotID]string

var englishNames = Names{
	Base:           "Base color",
	Light:          "Light shade",
	Dark:           "Dark shade",
	Complement:     "Complement",
	PureWhite:      "Pure white",
	OffWhite:       "Off-white",
	TitleBlack:     "Title black",
	ParagraphBlack: "Paragraph black",
}

var frenchNames = Names{
	Base:           "Couleur de base",
	Light:          "Déclinaison claire",
	Dark:           "Déclinaison foncée",
	Complement:     "Couleur opposée",
	PureWhite:      "Blanc pur",
	OffWhite:       "Blanc cassé",
	TitleBlack:     "Noir de titre",
	ParagraphBlack: "Noir de paragraphe",
}

// Supported label languages.
const (
	LanguageEnglish = "en"
	LanguageFrench  = "fr"
)

// DefaultNames returns the built-in labels for a language. Unknown
// languages get English.
func DefaultNames(language string) Names {
	src := englishNames
	if language == LanguageFrench {
		src = frenchNames
	}

	names := make(Names, len(src))
	for id, name := range src {
		names[id] = name
	}
	return names
}

// With returns a copy of n with overrides applied. Empty overrides are
// ignored.
func (n Names) With(overrides map[SlotID]string) Names {
	out := make(Names, len(n)+len(overrides))
	for id, name := range n {
		out[id] = name
	}
	for id, name := range overrides {
		if name != "" {
			out[id] = name
		}
	}
	return out
}

func (n Names) lookup(id SlotID) string {
	if name, ok := n[id]; ok && name != "" {
		return name
	}
	return englishNames[id]
}
