package recipe

import (
	"fmt"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
	"github.com/osse101/BaroCatalog_Go/internal/node"
)

// ResolveDeconstruct parses a Deconstruct node. A nil node yields nil: the item
// cannot be deconstructed.
func ResolveDeconstruct(decon *node.Node) (*domain.Deconstructable, error) {
	if decon == nil {
		return nil, nil
	}
	if !decon.IsTag(domain.TagDeconstruct) {
		return nil, fmt.Errorf(ErrFmtWrongTag, domain.ErrStructuralMismatch, domain.TagDeconstruct, decon.Tag)
	}

	seconds, ok, err := decon.Float(AttrTime)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf(ErrFmtMissingTime, domain.ErrMissingRequiredAttribute, decon.Tag)
	}

	output, err := sumByIdentifier(decon.ChildrenByTag(domain.TagItem), ErrFmtOutputEntry)
	if err != nil {
		return nil, err
	}

	return &domain.Deconstructable{Output: output, Time: seconds}, nil
}
