package components

// CSS classes placed on widget elements. The embedded stylesheet targets
// these names.
const (
	ClassInput       = "sf-input"
	ClassTextarea    = "sf-textarea"
	ClassFieldset    = "sf-fieldset"
	ClassChoiceLabel = "sf-choice-label"
	ClassChoiceInput = "sf-choice-input"
	ClassFileWrapper = "sf-file-input-wrapper"
	ClassFileHelp    = "sf-file-help"
)
