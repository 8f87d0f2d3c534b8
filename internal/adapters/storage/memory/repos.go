package memory

import (
	"bordoodles-api/internal/domain/catalog"
	"bordoodles-api/internal/domain/parents"
	"bordoodles-api/internal/domain/puppies"
)

func NewParentRepo() parents.Repository {
	return NewTable[parents.Parent, parents.Patch]("parent", func(p parents.Parent, id int64) parents.Parent {
		p.ID = id
		return p
	}, nil)
}

func NewPuppyRepo() puppies.Repository {
	return NewTable[puppies.Puppy, puppies.Patch]("puppy", func(p puppies.Puppy, id int64) puppies.Puppy {
		p.ID = id
		if p.Images == nil {
			p.Images = catalog.StringList{}
		}
		return p
	}, puppies.Puppy.Clone)
}
