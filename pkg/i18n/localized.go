package i18n

// Translation is the text of one key in one language.
type Translation struct {
	Lang string
	Text string
}

// LocalizedValue holds one Translation per configured language, in configuration order.
type LocalizedValue []Translation

// Get returns the text for lang, or an empty string when lang is not present.
func (v LocalizedValue) Get(lang string) string {
	for _, t := range v {
		if t.Lang == lang {
			return t.Text
		}
	}
	return ""
}

// Missing returns the languages whose text is empty.
func (v LocalizedValue) Missing() []string {
	var missing []string
	for _, t := range v {
		if t.Text == "" {
			missing = append(missing, t.Lang)
		}
	}
	return missing
}
