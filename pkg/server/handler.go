package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/kei-mag/survey-form-test/pkg/formconfig"
	"github.com/kei-mag/survey-form-test/pkg/orchestrator"
	"github.com/kei-mag/survey-form-test/pkg/renderers/vanilla"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Handler builds the page handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds the page handler from a pre-constructed Options
// value. Load and render failures are logged and answered with a generic 500
// so document details never reach the client.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		path, err := formconfig.ResolvePath(opts.Path)
		if err != nil {
			opts.Logger.WithError(err).Error("resolve form config path")
			writeInternalError(w)
			return
		}
		logger := opts.Logger.WithField("path", path)

		renderOptions := opts.RenderOptions
		if locale := requestLocale(r, opts.LocaleParam); locale != "" {
			renderOptions.Locale = locale
		}

		output, err := opts.Orchestrator.Generate(r.Context(), orchestrator.Request{
			Source:        formconfig.SourceFromFile(path),
			Renderer:      opts.Renderer,
			RenderOptions: renderOptions,
		})
		if err != nil {
			logFailure(logger, err)
			writeInternalError(w)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(output)
	})
}

// AssetsHandler serves the embedded default stylesheet. prefix is stripped
// from the request path before lookup.
func AssetsHandler(prefix string) http.Handler {
	return http.StripPrefix(strings.TrimRight(prefix, "/"), http.FileServerFS(vanilla.AssetsFS()))
}

func requestLocale(r *http.Request, param string) string {
	if param == "" {
		return ""
	}
	return strings.TrimSpace(r.URL.Query().Get(param))
}

func logFailure(logger logrus.FieldLogger, err error) {
	entry := logger.WithError(err)
	if fe, ok := formconfig.AsFieldError(err); ok {
		entry = entry.WithFields(logrus.Fields{
			"field": fe.Field,
			"line":  fe.Line,
		})
	}
	if errors.Is(err, formconfig.ErrNotFound) {
		entry.Error("form config not found")
		return
	}
	entry.Error("render form page")
}

func writeInternalError(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
