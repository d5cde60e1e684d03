package surveyform

import (
	"io/fs"

	vanilla "github.com/kei-mag/survey-form-test/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in vanilla page templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the default stylesheet. Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(surveyform.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
