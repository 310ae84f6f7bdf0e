package catalog

import (
	"errors"
	"fmt"

	"catalog-manager/core/utils"

	"github.com/hashicorp/go-multierror"
)

// ErrMalformedCatalog is matched by every structural validation failure.
var ErrMalformedCatalog = errors.New("malformed catalog")

// Catalog roles used in validation messages.
const (
	RoleConfigured = "configured"
	RolePrevious   = "previously discovered"
	RoleDiscovered = "newly discovered"
)

// ValidationError lists every structural problem found in one catalog.
type ValidationError struct {
	Role     string
	Problems *multierror.Error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s catalog is malformed: %s", e.Role, e.Problems.Error())
}

// Is makes errors.Is(err, ErrMalformedCatalog) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrMalformedCatalog
}

// Unwrap exposes the individual problems.
func (e *ValidationError) Unwrap() error {
	return e.Problems.ErrorOrNil()
}

// Validate checks the structural invariants of the catalog. Configured catalogs
// must carry a configuration on every entry. A nil catalog is valid and empty.
func (c *Catalog) Validate(role string) error {
	if c == nil {
		return nil
	}

	var problems *multierror.Error
	seen := make(map[Identity]int, len(c.Streams))

	for i, entry := range c.Streams {
		if entry.Stream == nil {
			problems = multierror.Append(problems, fmt.Errorf("stream #%d has a configuration but no stream descriptor", i))
			continue
		}
		if err := utils.Validate(entry.Stream); err != nil {
			problems = multierror.Append(problems, fmt.Errorf("stream #%d: %w", i, err))
			continue
		}

		id := entry.Identity()
		if first, dup := seen[id]; dup {
			problems = multierror.Append(problems, fmt.Errorf("stream #%d duplicates identity %q of stream #%d", i, id, first))
			continue
		}
		seen[id] = i

		if entry.Config == nil {
			if role == RoleConfigured {
				problems = multierror.Append(problems, fmt.Errorf("stream %q has no configuration", id))
			}
			continue
		}
		if err := utils.Validate(entry.Config); err != nil {
			problems = multierror.Append(problems, fmt.Errorf("stream %q: %w", id, err))
		}
	}

	if problems.ErrorOrNil() == nil {
		return nil
	}
	return &ValidationError{Role: role, Problems: problems}
}
