package taxonomy

import "strings"

// CategoryList is the fixed set of expense categories. Categories are stored
// lower-case; input is matched case-insensitively.
var CategoryList = []string{
	"food",
	"transport",
	"shopping",
	"utilities",
	"education",
	"medical",
	"entertainment",
	"other",
}

var categorySet = func() map[string]bool {
	set := make(map[string]bool, len(CategoryList))
	for _, c := range CategoryList {
		set[c] = true
	}
	return set
}()

func IsCategoryAllowed(category string) bool {
	return categorySet[strings.ToLower(category)]
}

// Canonical returns the stored form of a category (lower-case).
func Canonical(category string) string {
	return strings.ToLower(category)
}
