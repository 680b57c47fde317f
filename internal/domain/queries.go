package domain

import (
	"fmt"
	"strings"
)

// NormalizeRole trims and lowercases a job role. An empty result means no role.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// BuildQueries returns the repository search queries for a company, most
// specific first. Role-qualified queries come before the five base ones.
func BuildQueries(company, role string) []string {
	queries := []string{
		fmt.Sprintf(`"%s" interview questions`, company),
		fmt.Sprintf(`%s "technical interview"`, company),
		fmt.Sprintf(`%s "coding interview"`, company),
		fmt.Sprintf(`%s "interview preparation"`, company),
		fmt.Sprintf(`%s "interview experience"`, company),
	}

	r := NormalizeRole(role)
	if r == "" {
		return queries
	}

	roleQueries := []string{
		fmt.Sprintf(`"%s" %s interview`, company, r),
		fmt.Sprintf(`%s %s "interview questions"`, company, r),
		fmt.Sprintf(`%s %s "technical interview"`, company, r),
		fmt.Sprintf(`%s "interview preparation" %s`, r, company),
	}
	return append(roleQueries, queries...)
}
