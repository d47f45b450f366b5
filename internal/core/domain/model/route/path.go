package route

import (
	"fmt"

	"deliverychecker/internal/core/domain/model/kernel"
	"deliverychecker/internal/pkg/errs"
)

// Path is the ordered sequence of addresses a vehicle visits. Positions are
// zero based and an address may appear more than once.
type Path []kernel.Address

// NewPath builds a path, rejecting zero value addresses.
func NewPath(addresses ...kernel.Address) (Path, error) {
	p := make(Path, len(addresses))
	copy(p, addresses)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that every address in the path was constructed.
func (p Path) Validate() error {
	for i, a := range p {
		if err := a.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("path[%d]", i), err)
		}
	}
	return nil
}
