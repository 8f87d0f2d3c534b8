package puppies

import "bordoodles-api/internal/domain/catalog"

type Repository interface {
	catalog.Gateway[Puppy, Patch]
}
