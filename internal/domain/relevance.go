package domain

import (
	"slices"
	"strings"
)

// DefaultMaxResources is the number of repository links returned by default.
const DefaultMaxResources = 8

// interviewKeywords mark a repository as interview preparation material.
var interviewKeywords = []string{
	"interview question",
	"hiring process",
	"coding challenge",
	"assessment",
	"interview experience",
	"interview prep",
	"technical interview",
	"onsite interview",
	"online assessment",
	"leetcode",
	"interview problem",
}

// InterviewKeywords returns the keyword list for a role: the fixed list,
// extended with the role and its space-stripped form when a role is given.
func InterviewKeywords(role string) []string {
	kw := slices.Clone(interviewKeywords)
	if r := NormalizeRole(role); r != "" {
		kw = append(kw, r, strings.ReplaceAll(r, " ", ""))
	}
	return kw
}

type candidate struct {
	res          Resource
	roleSpecific bool
}

// FilterResources merges raw search records into at most maxResults
// resources. A record is kept only if its name+description mention the
// company AND at least one interview keyword. Duplicate URLs keep the first
// occurrence. With a role, role-matching records are stably moved first.
func FilterResources(records []RepoRecord, company, role string, maxResults int) []Resource {
	if maxResults <= 0 {
		maxResults = DefaultMaxResources
	}

	companyLower := strings.ToLower(company)
	r := NormalizeRole(role)
	roleTerms := strings.Fields(r)
	keywords := InterviewKeywords(role)

	seen := make(map[string]struct{}, len(records))
	accepted := make([]candidate, 0, maxResults*2)

	for _, rec := range records {
		if rec.HTMLURL == "" {
			continue
		}
		if _, dup := seen[rec.HTMLURL]; dup {
			continue
		}

		haystack := strings.ToLower(rec.Name) + " " + strings.ToLower(rec.Description)

		if !strings.Contains(haystack, companyLower) {
			continue
		}

		roleSpecific := r != "" && containsAny(haystack, roleTerms)

		if containsAny(haystack, keywords) {
			accepted = append(accepted, candidate{
				res:          Resource{Name: rec.FullName, URL: rec.HTMLURL},
				roleSpecific: roleSpecific,
			})
			seen[rec.HTMLURL] = struct{}{}
		}

		// over-fetch so role prioritisation has something to reorder
		if len(accepted) >= maxResults*2 {
			break
		}
	}

	if r != "" {
		prioritizeRole(accepted)
	}

	out := make([]Resource, 0, min(len(accepted), maxResults))
	for _, c := range accepted {
		if len(out) == maxResults {
			break
		}
		out = append(out, c.res)
	}
	return out
}

// prioritizeRole stably moves role-specific candidates ahead of the rest.
func prioritizeRole(cs []candidate) {
	slices.SortStableFunc(cs, func(a, b candidate) int {
		switch {
		case a.roleSpecific == b.roleSpecific:
			return 0
		case a.roleSpecific:
			return -1
		default:
			return 1
		}
	})
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
