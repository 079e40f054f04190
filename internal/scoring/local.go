package scoring

import "github.com/webfacts/presencescore/internal/model"

// ScoreLocalPresence scores local findability: directory listings, the
// business listing state, name/address/phone consistency, local keyword
// rankings, and local on-page markup. When an external local search
// measurement exists it forms the automated baseline and the composite
// built here becomes the correction layer.
//
// Composite component budget: directories 25, business listing 30,
// NAP consistency 15, keyword rankings 15, local markup 15.
func ScoreLocalPresence(raw *model.RawFindings, o *model.ManualOverrides) model.Score {
	composite := localComposite(raw, o)

	var auto model.Score = model.NoData()
	if raw != nil && raw.LocalSearchScore != nil {
		auto = model.NewScore(*raw.LocalSearchScore)
	}
	return blend(auto, composite)
}

func localComposite(raw *model.RawFindings, o *model.ManualOverrides) model.Score {
	var lo *model.LocalOverride
	if o != nil {
		lo = o.Local
	}

	points := 0.0
	haveData := false

	dirs := directoryListings(raw, lo)
	if len(dirs) > 0 {
		haveData = true
		points += directoryPoints(dirs)
	}

	if listingPts, ok := listingPoints(raw, lo); ok {
		haveData = true
		points += listingPts
	}

	if lo != nil && lo.NAPConsistency != nil {
		if nap, ok := ratingScore(lo.NAPConsistency).ValueOK(); ok {
			haveData = true
			points += float64(nap) / 100 * 15
		}
	}

	if raw != nil && raw.Search != nil {
		s := raw.Search
		if len(s.RankedKeywords) > 0 {
			haveData = true
			points += keywordPoints(s.RankedKeywords)
		}
		haveData = true
		if s.StructuredData {
			points += 8
		}
		if s.OpeningHoursMarkup {
			points += 4
		}
		if s.GeoMetadata {
			points += 3
		}
	}

	if !haveData {
		return model.NoData()
	}
	return model.NewScoreFromFloat(points)
}

// directoryListings returns the effective directory set. A reviewer-entered
// directory list replaces the detected one wholesale; merging entry by
// entry would leave stale detections the reviewer already corrected.
func directoryListings(raw *model.RawFindings, lo *model.LocalOverride) []model.DirectoryListing {
	if lo != nil && len(lo.Directories) > 0 {
		return lo.Directories
	}
	if raw != nil {
		return raw.Directories
	}
	return nil
}

// directoryPoints rates directory coverage: presence 10, completeness 8,
// verification 7, each as a ratio over all known directories.
func directoryPoints(dirs []model.DirectoryListing) float64 {
	present, complete, verified := 0, 0, 0
	for _, d := range dirs {
		if d.Present {
			present++
		}
		if d.Complete {
			complete++
		}
		if d.Verified {
			verified++
		}
	}
	n := float64(len(dirs))
	return float64(present)/n*10 + float64(complete)/n*8 + float64(verified)/n*7
}

// listingPoints rates the business listing state: claimed 15, verified 15.
// Manual answers win over detection per field.
func listingPoints(raw *model.RawFindings, lo *model.LocalOverride) (float64, bool) {
	var reviews *model.ReviewFindings
	if raw != nil {
		reviews = raw.Reviews
	}
	if reviews == nil && (lo == nil || (lo.ListingClaimed == nil && lo.ListingVerified == nil)) {
		return 0, false
	}

	claimed := reviews != nil && reviews.ListingClaimed
	verified := reviews != nil && reviews.ListingVerified
	if lo != nil {
		if lo.ListingClaimed != nil {
			claimed = *lo.ListingClaimed
		}
		if lo.ListingVerified != nil {
			verified = *lo.ListingVerified
		}
	}

	points := 0.0
	if claimed {
		points += 15
	}
	if verified {
		points += 15
	}
	return points, true
}
