package reconcile

import (
	"catalog-manager/core/catalog"

	"github.com/hashicorp/go-multierror"
)

// MergeCatalogWithConfiguration merges the user's configured catalog with a
// fresh discovery, using the previously discovered catalog as the stability
// baseline. The result holds exactly the streams of newlyDiscovered, in its
// order. Inputs are read-only and never aliased by the result.
func MergeCatalogWithConfiguration(configured, previouslyDiscovered, newlyDiscovered *catalog.Catalog) (*catalog.Catalog, error) {
	plan, err := MergeWithPlan(configured, previouslyDiscovered, newlyDiscovered)
	if err != nil {
		return nil, err
	}
	return plan.Catalog, nil
}

// MergeWithPlan performs the merge and reports what happened to every stream.
func MergeWithPlan(configured, previouslyDiscovered, newlyDiscovered *catalog.Catalog) (*ReconcilePlan, error) {
	if err := validateInputs(configured, previouslyDiscovered, newlyDiscovered); err != nil {
		return nil, err
	}

	cfgIndex, err := Index(configured)
	if err != nil {
		return nil, err
	}
	prevIndex, err := Index(previouslyDiscovered)
	if err != nil {
		return nil, err
	}
	newIndex, err := Index(newlyDiscovered)
	if err != nil {
		return nil, err
	}

	merged := &catalog.Catalog{Streams: make([]catalog.StreamEntry, 0, newIndex.Len())}
	results := make([]StreamResult, 0, cfgIndex.Len()+newIndex.Len())

	for _, m := range matchIndexes(cfgIndex, newIndex) {
		if m.Kind == MatchRemoved {
			results = append(results, StreamResult{
				Identity: m.Identity,
				Outcome:  OutcomeRemoved,
				Reasons:  []string{"stream is no longer discovered"},
			})
			continue
		}

		result := resolveStream(m.A, prevIndex.Get(m.Identity), m.B)
		merged.Streams = append(merged.Streams, *result.Entry)
		results = append(results, result)
	}

	return &ReconcilePlan{
		Catalog: merged,
		Results: results,
		Summary: summarize(results, len(merged.Streams)),
	}, nil
}

// validateInputs checks all three catalogs and reports every problem at once.
func validateInputs(configured, previouslyDiscovered, newlyDiscovered *catalog.Catalog) error {
	var errs *multierror.Error
	if err := configured.Validate(catalog.RoleConfigured); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := previouslyDiscovered.Validate(catalog.RolePrevious); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := newlyDiscovered.Validate(catalog.RoleDiscovered); err != nil {
		errs = multierror.Append(errs, err)
	}
	if errs == nil {
		return nil
	}
	if len(errs.Errors) == 1 {
		return errs.Errors[0]
	}
	return errs
}

func summarize(results []StreamResult, total int) PlanSummary {
	summary := PlanSummary{TotalStreams: total}
	for _, r := range results {
		switch r.Outcome {
		case OutcomeKept:
			summary.Kept++
		case OutcomeReset:
			summary.Reset++
		case OutcomeAdded:
			summary.Added++
		case OutcomeRemoved:
			summary.Removed++
		}
		summary.PrunedFields += r.Pruned
	}
	return summary
}
