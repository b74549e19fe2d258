package util

import "strings"

func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// SanitizeForSearch strips the company-name noise that confuses web search.
func SanitizeForSearch(s string) string {
	s = strings.TrimSpace(s)
	repls := []string{
		", Inc.", "", " Inc.", "", " Inc", "",
		", LLC", "", " LLC", "",
		", Ltd.", "", " Ltd.", "", " Ltd", "",
	}
	r := strings.NewReplacer(repls...)
	s = r.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
