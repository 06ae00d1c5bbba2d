package leave

import "strings"

// ClassifyLegacy resolves a category from a leave type's code or free-text
// name. It exists only as a migration shim for tenants whose leave types
// predate the category column; new code must read LeaveType.Category.
//
// Matching is by exact code first, then case-insensitive name substring.
// Anything that matches none of the buckets stays uncategorized.
func ClassifyLegacy(code *string, name string) Category {
	if code != nil {
		switch strings.ToUpper(strings.TrimSpace(*code)) {
		case "CL":
			return CategoryCasual
		case "SL":
			return CategorySick
		case "EL":
			return CategoryEarned
		}
	}

	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "casual"):
		return CategoryCasual
	case strings.Contains(lower, "sick"):
		return CategorySick
	case strings.Contains(lower, "earned"), strings.Contains(lower, "vacation"):
		return CategoryEarned
	}
	return CategoryUncategorized
}
