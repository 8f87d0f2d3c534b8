package puppies

import "bordoodles-api/internal/domain/catalog"

// Fields es la allow-list de campos mutables.
var Fields = []string{"name", "breed", "color", "gender", "price", "status", "dob", "description", "images"}

// Patch es un update parcial: nil / Set=false = no tocar.
type Patch struct {
	Name        *string
	Breed       *string
	Color       *string
	Gender      *string
	Price       catalog.Nullable[int]
	Status      *string
	DOB         catalog.Nullable[catalog.Date]
	Description *string
	Images      *[]string
}

// PatchFromFields traduce un body ya filtrado por allow-list a Patch.
func PatchFromFields(f catalog.Fields) (Patch, error) {
	var (
		p   Patch
		err error
	)
	if p.Name, err = f.String("name"); err != nil {
		return Patch{}, err
	}
	if p.Breed, err = f.String("breed"); err != nil {
		return Patch{}, err
	}
	if p.Color, err = f.String("color"); err != nil {
		return Patch{}, err
	}
	if p.Gender, err = f.String("gender"); err != nil {
		return Patch{}, err
	}
	if p.Price, err = f.Int("price"); err != nil {
		return Patch{}, err
	}
	if p.Status, err = f.String("status"); err != nil {
		return Patch{}, err
	}
	if p.DOB, err = f.Date("dob"); err != nil {
		return Patch{}, err
	}
	if p.Description, err = f.String("description"); err != nil {
		return Patch{}, err
	}
	if p.Images, err = f.Strings("images"); err != nil {
		return Patch{}, err
	}
	return p, nil
}

func (p Patch) Validate() error {
	if err := catalog.Required("name", p.Name); err != nil {
		return err
	}
	return catalog.Required("breed", p.Breed)
}

func (p Patch) Apply(rec *Puppy) {
	if p.Name != nil {
		rec.Name = *p.Name
	}
	if p.Breed != nil {
		rec.Breed = *p.Breed
	}
	if p.Color != nil {
		rec.Color = *p.Color
	}
	if p.Gender != nil {
		rec.Gender = *p.Gender
	}
	if p.Price.Set {
		rec.Price = copyPtr(p.Price.Value)
	}
	if p.Status != nil {
		rec.Status = *p.Status
	}
	if p.DOB.Set {
		rec.DOB = copyPtr(p.DOB.Value)
	}
	if p.Description != nil {
		rec.Description = *p.Description
	}
	if p.Images != nil {
		rec.Images = append(catalog.StringList{}, (*p.Images)...)
	}
}

func (p Patch) Columns() []catalog.Column {
	var cols []catalog.Column
	add := func(name string, v any) {
		cols = append(cols, catalog.Column{Name: name, Value: v})
	}

	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Breed != nil {
		add("breed", *p.Breed)
	}
	if p.Color != nil {
		add("color", *p.Color)
	}
	if p.Gender != nil {
		add("gender", *p.Gender)
	}
	if p.Price.Set {
		add("price", PriceArg(p.Price.Value))
	}
	if p.Status != nil {
		add("status", *p.Status)
	}
	if p.DOB.Set {
		add("dob", DOBArg(p.DOB.Value))
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.Images != nil {
		add("images", catalog.StringList(*p.Images).Text())
	}
	return cols
}

// NewPuppy construye un registro nuevo. Los defaults (status, images) sólo aplican si el campo no vino;
// los strings se guardan tal cual se enviaron.
func NewPuppy(p Patch) (Puppy, error) {
	if p.Name == nil {
		return Puppy{}, catalog.Invalid("name", "is required")
	}
	if p.Breed == nil {
		return Puppy{}, catalog.Invalid("breed", "is required")
	}
	if err := p.Validate(); err != nil {
		return Puppy{}, err
	}

	rec := Puppy{
		Status: string(StatusAvailable),
		Images: catalog.StringList{},
	}
	p.Apply(&rec)
	return rec, nil
}

// PriceArg y DOBArg convierten a valores básicos para los drivers SQL.
func PriceArg(v *int) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}

func DOBArg(v *catalog.Date) any {
	if v == nil {
		return nil
	}
	return v.String()
}

func copyPtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
