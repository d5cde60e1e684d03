package vanilla

// ChromeClass is a typed identifier for the CSS classes on form chrome.
type ChromeClass string

const (
	ClassForm               ChromeClass = "sf-form"
	ClassSection            ChromeClass = "sf-section"
	ClassSectionHeader      ChromeClass = "sf-section-header"
	ClassSectionTitle       ChromeClass = "sf-section-title"
	ClassSectionDescription ChromeClass = "sf-section-description"
	ClassSectionBody        ChromeClass = "sf-section-body"
)

func (c ChromeClass) String() string { return string(c) }
