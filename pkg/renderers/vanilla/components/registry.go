package components

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/net/html"

	"github.com/kei-mag/survey-form-test/pkg/formconfig"
	"github.com/kei-mag/survey-form-test/pkg/render"
)

// Field carries everything a component needs to build one item's body.
type Field struct {
	// Index is the item's position in FormConfig.Contents.
	Index int
	// Scope is the section's identifier prefix.
	Scope string
	// TitleID is the id of the section heading, used for aria-labelledby.
	TitleID string
	// Messages holds the localised renderer-generated strings.
	Messages render.Messages
}

// Name returns the form control name, stable across renders.
func (f Field) Name() string {
	return fmt.Sprintf("field-%d", f.Index)
}

// ControlID returns the id of the item's single control.
func (f Field) ControlID() string {
	return fmt.Sprintf("%s-%d", f.Scope, f.Index)
}

// ChoiceID returns the id of one choice control.
func (f Field) ChoiceID(choiceIndex int) string {
	return fmt.Sprintf("%s-%d-%d", f.Scope, f.Index, choiceIndex)
}

// Renderer builds the body nodes for one item. It must return freshly
// allocated nodes on every call.
type Renderer func(item formconfig.FormItem, field Field) []*html.Node

// Descriptor bundles the renderer with the stylesheets it depends on.
type Descriptor struct {
	Type        formconfig.ItemType
	Renderer    Renderer
	Stylesheets []string
}

// Registry tracks component descriptors keyed by item type. Callers can
// override defaults per type.
type Registry struct {
	mu         sync.RWMutex
	components map[formconfig.ItemType]Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		components: make(map[formconfig.ItemType]Descriptor),
	}
}

// Clone returns a copy that can be mutated independently.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := New()
	for typ, descriptor := range r.components {
		cloned.components[typ] = cloneDescriptor(descriptor)
	}
	return cloned
}

// Register associates a descriptor with an item type, replacing any
// existing entry.
func (r *Registry) Register(typ formconfig.ItemType, descriptor Descriptor) error {
	if typ == "" {
		return fmt.Errorf("components: item type is required")
	}
	if descriptor.Renderer == nil {
		return fmt.Errorf("components: renderer for %q is nil", typ)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Type = typ
	r.components[typ] = cloneDescriptor(descriptor)
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(typ formconfig.ItemType, descriptor Descriptor) {
	if err := r.Register(typ, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by item type.
func (r *Registry) Descriptor(typ formconfig.ItemType) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.components[typ]
	if !ok {
		return Descriptor{}, false
	}
	return cloneDescriptor(descriptor), true
}

// Types returns the registered item types, sorted.
func (r *Registry) Types() []formconfig.ItemType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]formconfig.ItemType, 0, len(r.components))
	for typ := range r.components {
		types = append(types, typ)
	}
	slices.Sort(types)
	return types
}

// Stylesheets returns the de-duplicated stylesheets needed by the given
// item types, in first-seen order.
func (r *Registry) Stylesheets(types []formconfig.ItemType) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	seen := make(map[string]struct{})
	for _, typ := range types {
		descriptor, ok := r.components[typ]
		if !ok {
			continue
		}
		for _, href := range descriptor.Stylesheets {
			if href == "" {
				continue
			}
			if _, dup := seen[href]; dup {
				continue
			}
			seen[href] = struct{}{}
			out = append(out, href)
		}
	}
	return out
}

func cloneDescriptor(src Descriptor) Descriptor {
	return Descriptor{
		Type:        src.Type,
		Renderer:    src.Renderer,
		Stylesheets: slices.Clone(src.Stylesheets),
	}
}
