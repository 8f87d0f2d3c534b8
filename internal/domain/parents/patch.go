package parents

import "bordoodles-api/internal/domain/catalog"

// Fields es la allow-list de campos mutables.
var Fields = []string{"name", "role", "breed", "color", "weight", "description", "image"}

// Patch es un update parcial: nil = no tocar.
type Patch struct {
	Name        *string
	Role        *string
	Breed       *string
	Color       *string
	Weight      *string
	Description *string
	Image       *string
}

func PatchFromFields(f catalog.Fields) (Patch, error) {
	var p Patch
	targets := []struct {
		name string
		dst  **string
	}{
		{"name", &p.Name},
		{"role", &p.Role},
		{"breed", &p.Breed},
		{"color", &p.Color},
		{"weight", &p.Weight},
		{"description", &p.Description},
		{"image", &p.Image},
	}
	for _, t := range targets {
		v, err := f.String(t.name)
		if err != nil {
			return Patch{}, err
		}
		*t.dst = v
	}
	return p, nil
}

func (p Patch) Validate() error {
	if err := catalog.Required("name", p.Name); err != nil {
		return err
	}
	return catalog.Required("role", p.Role)
}

func (p Patch) Apply(rec *Parent) {
	if p.Name != nil {
		rec.Name = *p.Name
	}
	if p.Role != nil {
		rec.Role = *p.Role
	}
	if p.Breed != nil {
		rec.Breed = *p.Breed
	}
	if p.Color != nil {
		rec.Color = *p.Color
	}
	if p.Weight != nil {
		rec.Weight = *p.Weight
	}
	if p.Description != nil {
		rec.Description = *p.Description
	}
	if p.Image != nil {
		rec.Image = *p.Image
	}
}

func (p Patch) Columns() []catalog.Column {
	var cols []catalog.Column
	if p.Name != nil {
		cols = append(cols, catalog.Column{Name: "name", Value: *p.Name})
	}
	if p.Role != nil {
		cols = append(cols, catalog.Column{Name: "role", Value: *p.Role})
	}
	if p.Breed != nil {
		cols = append(cols, catalog.Column{Name: "breed", Value: *p.Breed})
	}
	if p.Color != nil {
		cols = append(cols, catalog.Column{Name: "color", Value: *p.Color})
	}
	if p.Weight != nil {
		cols = append(cols, catalog.Column{Name: "weight", Value: *p.Weight})
	}
	if p.Description != nil {
		cols = append(cols, catalog.Column{Name: "description", Value: *p.Description})
	}
	if p.Image != nil {
		cols = append(cols, catalog.Column{Name: "image", Value: *p.Image})
	}
	return cols
}

// NewParent construye un registro nuevo; name y role son obligatorios.
func NewParent(p Patch) (Parent, error) {
	if p.Name == nil {
		return Parent{}, catalog.Invalid("name", "is required")
	}
	if p.Role == nil {
		return Parent{}, catalog.Invalid("role", "is required")
	}
	if err := p.Validate(); err != nil {
		return Parent{}, err
	}

	var rec Parent
	p.Apply(&rec)
	return rec, nil
}
