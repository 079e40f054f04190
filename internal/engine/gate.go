package engine

import (
	"errors"
	"fmt"

	"github.com/webfacts/presencescore/internal/model"
)

// ErrUnreviewedCategories is returned by CheckExportable when a
// customer-facing artifact is requested for a result whose categories
// have data but no reviewer sign-off. Use errors.Is to detect it.
var ErrUnreviewedCategories = errors.New("result has unreviewed categories")

// CheckExportable verifies that every category carrying data was signed
// off by a reviewer. Categories without data need no sign-off; there is
// nothing in them to vouch for.
func CheckExportable(result *model.AnalysisResult) error {
	unreviewed := result.UnreviewedCategories()
	if len(unreviewed) == 0 {
		return nil
	}
	names := make([]string, 0, len(unreviewed))
	for _, c := range unreviewed {
		names = append(names, string(c))
	}
	return fmt.Errorf("%w: %v", ErrUnreviewedCategories, names)
}
