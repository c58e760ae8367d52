package model

// Well-known data file columns
const (
	ColumnURL           = "url"
	ColumnTitle         = "title"
	ColumnHowLongAgo    = "how_long_ago"
	ColumnSizeFormatted = "size_formatted"
)

// VideoRecord is a single row of the data file.
type VideoRecord struct {
	URL           string            `json:"url"`
	Title         string            `json:"title,omitempty"`
	HowLongAgo    string            `json:"how_long_ago,omitempty"`
	SizeFormatted string            `json:"size_formatted,omitempty"`
	Extra         map[string]string `json:"extra,omitempty"` // Columns not recognized above, keyed by header name
}

// Set assigns a column value by header name.
func (v *VideoRecord) Set(name, value string) {
	switch name {
	case ColumnURL:
		v.URL = value
	case ColumnTitle:
		v.Title = value
	case ColumnHowLongAgo:
		v.HowLongAgo = value
	case ColumnSizeFormatted:
		v.SizeFormatted = value
	default:
		if v.Extra == nil {
			v.Extra = make(map[string]string)
		}
		v.Extra[name] = value
	}
}

// Field returns a column value by header name.
func (v *VideoRecord) Field(name string) (string, bool) {
	switch name {
	case ColumnURL:
		return v.URL, true
	case ColumnTitle:
		return v.Title, true
	case ColumnHowLongAgo:
		return v.HowLongAgo, true
	case ColumnSizeFormatted:
		return v.SizeFormatted, true
	}

	value, ok := v.Extra[name]
	return value, ok
}

// DisplayTitle returns the title or the placeholder for untitled videos.
func (v *VideoRecord) DisplayTitle() string {
	if v.Title == "" {
		return DefaultTitle
	}
	return v.Title
}
