package optimizer

// EstimateSalary maps a composite score band to a dollar band. This is a
// placeholder for real market salary data: it exists so lineup construction
// stays usable on slates where the platform salary feed is unavailable, and
// callers should prefer platform salaries whenever they have them. The
// mapping is monotonic in score.
func EstimateSalary(compositeScore float64) int {
	switch {
	case compositeScore >= 90:
		return 11500
	case compositeScore >= 80:
		return 10200
	case compositeScore >= 70:
		return 9000
	case compositeScore >= 60:
		return 7800
	case compositeScore >= 50:
		return 6600
	case compositeScore >= 40:
		return 5400
	default:
		return 4200
	}
}
