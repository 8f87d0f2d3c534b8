package parents

import "bordoodles-api/internal/domain/catalog"

type Repository interface {
	catalog.Gateway[Parent, Patch]
}
