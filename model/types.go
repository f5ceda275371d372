package model

// FragmentType represents the type label of a document fragment as reported
// by the upstream layout engine.
type FragmentType int

const (
	UncategorizedText FragmentType = iota
	FigureCaption
	Footer
	Header
	Image
	ListItem
	NarrativeText
	Table
	Title
)

var fragmentTypeNames = map[FragmentType]string{
	UncategorizedText: "UncategorizedText",
	FigureCaption:     "FigureCaption",
	Footer:            "Footer",
	Header:            "Header",
	Image:             "Image",
	ListItem:          "ListItem",
	NarrativeText:     "NarrativeText",
	Table:             "Table",
	Title:             "Title",
}

func (t FragmentType) String() string {
	if name, ok := fragmentTypeNames[t]; ok {
		return name
	}
	return "UncategorizedText"
}

// ParseFragmentType folds an upstream type label onto the closed FragmentType
// set. Unrecognized labels map to UncategorizedText, never an error.
func ParseFragmentType(label string) FragmentType {
	for t, name := range fragmentTypeNames {
		if name == label {
			return t
		}
	}
	return UncategorizedText
}

// HeaderLevel represents the hierarchical level of a section header.
type HeaderLevel int

const (
	HeaderUnknown HeaderLevel = iota
	FirstHeader                // "1 " or "1. "
	SecondHeader               // "1.1 "
	ThirdHeader                // "1.1.1 "
	FourthHeader               // "1.1.1.1 "
	FifthHeader                // "1.1.1.1.1 "
	AppendixHeader             // "Appendix ..."
)

func (l HeaderLevel) String() string {
	switch l {
	case FirstHeader:
		return "FirstHeader"
	case SecondHeader:
		return "SecondHeader"
	case ThirdHeader:
		return "ThirdHeader"
	case FourthHeader:
		return "FourthHeader"
	case FifthHeader:
		return "FifthHeader"
	case AppendixHeader:
		return "AppendixHeader"
	default:
		return "Unknown"
	}
}
