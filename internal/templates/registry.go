package templates

import "fmt"

// Registry holds the built-in template catalog in display order.
type Registry struct {
	ordered []*Template
	byID    map[string]*Template
}

// NewRegistry builds the catalog of built-in templates.
func NewRegistry() *Registry {
	r := &Registry{
		ordered: []*Template{
			modernProfessional,
			classicExecutive,
			creativeDesigner,
			minimalClean,
			techSpecialist,
		},
		byID: make(map[string]*Template),
	}
	for _, t := range r.ordered {
		r.byID[t.ID] = t
	}
	return r
}

// All returns every template in catalog order.
func (r *Registry) All() []*Template {
	out := make([]*Template, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// GetByID returns the template with the given ID.
func (r *Registry) GetByID(id string) (*Template, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	return t, nil
}

// ByCategory returns templates matching the given category, in catalog order.
func (r *Registry) ByCategory(category Category) []*Template {
	var out []*Template
	for _, t := range r.ordered {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// IDs returns the catalog's template IDs in order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.ordered))
	for _, t := range r.ordered {
		ids = append(ids, t.ID)
	}
	return ids
}
