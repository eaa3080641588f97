// Package algorithms contains pure rating computations over review sets.
// Nothing here touches the database; callers load reviews through the
// repository and pass them in, so the same numbers can be produced on any
// slice regardless of where it came from.
package algorithms

import (
	"math"
	"sort"
	"time"

	"schoolhub_backend/internal/models"
)

// Scope names the visibility policy for an aggregation. Public numbers are
// computed over approved reviews only; moderation dashboards must ask for
// ScopeAll explicitly so hidden reviews never leak into public figures by
// accident.
type Scope string

const (
	ScopePublic Scope = "public"
	ScopeAll    Scope = "all"
)

// VisibleForScope applies the visibility policy to a review set.
func VisibleForScope(reviews []models.Review, scope Scope) []models.Review {
	if scope == ScopeAll {
		return reviews
	}
	visible := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.Status == models.ReviewStatusApproved {
			visible = append(visible, r)
		}
	}
	return visible
}

// PerCategoryAverages returns the mean score of each category across the
// set. An empty set yields all zeros, not an error.
func PerCategoryAverages(reviews []models.Review) map[models.RatingCategory]float64 {
	averages := make(map[models.RatingCategory]float64, len(models.RatingCategories))
	for _, c := range models.RatingCategories {
		averages[c] = 0
	}
	if len(reviews) == 0 {
		return averages
	}

	for _, r := range reviews {
		for category, score := range r.Scores() {
			averages[category] += float64(score)
		}
	}
	for _, c := range models.RatingCategories {
		averages[c] /= float64(len(reviews))
	}
	return averages
}

// OverallAverage is the mean of all individual category scores in the set,
// equivalently the mean of the per-category averages. Unrounded; zero for
// an empty set.
func OverallAverage(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range reviews {
		sum += r.Average()
	}
	return sum / float64(len(reviews))
}

// StatusCounts tallies reviews per moderation status. All three statuses
// are always present in the result, zero-valued when absent from the set.
func StatusCounts(reviews []models.Review) map[models.ReviewStatus]int {
	counts := map[models.ReviewStatus]int{
		models.ReviewStatusApproved: 0,
		models.ReviewStatusPending:  0,
		models.ReviewStatusRejected: 0,
	}
	for _, r := range reviews {
		counts[r.Status]++
	}
	return counts
}

// MonthBucket is one calendar month's review count. Month is "YYYY-MM".
type MonthBucket struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// MonthlyBuckets groups reviews by calendar month of their receive date,
// restricted to the most recent windowMonths months inclusive of now's
// month, ascending. Months with zero reviews are omitted: the series is
// sparse and the presentation layer decides any fill policy.
func MonthlyBuckets(reviews []models.Review, windowMonths int, now time.Time) []MonthBucket {
	if windowMonths <= 0 {
		windowMonths = 3
	}

	// Window start: first day of the oldest month in range.
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(windowMonths - 1), 0)
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, 1, 0)

	counts := make(map[string]int)
	for _, r := range reviews {
		d := r.ReceiveDate.In(now.Location())
		if d.Before(start) || !d.Before(end) {
			continue
		}
		counts[d.Format("2006-01")]++
	}

	buckets := make([]MonthBucket, 0, len(counts))
	for month, count := range counts {
		buckets = append(buckets, MonthBucket{Month: month, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Month < buckets[j].Month })
	return buckets
}

// FilterByRoundedRating keeps reviews whose rounded average is in ratings.
// An empty set means no filter.
func FilterByRoundedRating(reviews []models.Review, ratings map[int]bool) []models.Review {
	if len(ratings) == 0 {
		return reviews
	}
	filtered := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		if ratings[int(math.Round(r.Average()))] {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Round2 rounds for display. Aggregates are carried unrounded internally.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds a single review's average for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
