package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// RecommendedResources is the general-purpose table rendered under every report.
var RecommendedResources = []GeneralResource{
	{Name: "Tech Interview Handbook", URL: "https://github.com/yangshun/tech-interview-handbook", Description: "Curated coding interview preparation materials"},
	{Name: "System Design Primer", URL: "https://github.com/donnemartin/system-design-primer", Description: "Learn how to design large-scale systems"},
	{Name: "Coding Interview University", URL: "https://github.com/jwasham/coding-interview-university", Description: "A complete computer science study plan"},
	{Name: "Front-end Interview Questions", URL: "https://github.com/h5bp/Front-end-Developer-Interview-Questions", Description: "Questions for front-end developer interviews"},
	{Name: "Back-end Interview Questions", URL: "https://github.com/arialdomartini/Back-End-Developer-Interview-Questions", Description: "Questions for back-end developer interviews"},
}

// VideoTopics are searched in order for every company.
var VideoTopics = []string{
	"company overview",
	"roadmap to get a job",
	"interview preparation",
	"employee experience",
	"interview questions",
}

// TopicHeading upper-cases the first letter and lower-cases the rest.
func TopicHeading(topic string) string {
	if topic == "" {
		return ""
	}
	return upperFirst(strings.ToLower(topic))
}

// RoleHeading title-cases every word of a role, ex: "data scientist" -> "Data Scientist".
func RoleHeading(role string) string {
	words := strings.Fields(strings.ToLower(role))
	for i, w := range words {
		words[i] = upperFirst(w)
	}
	return strings.Join(words, " ")
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// RoleVideoQuery is the extra search issued when a role is given.
func RoleVideoQuery(company, role string) string {
	return company + " " + role + " position interview experience"
}

// FilterRoleVideos keeps videos whose title mentions the company and at least
// one word of the role.
func FilterRoleVideos(videos []Video, company, role string) []Video {
	companyLower := strings.ToLower(company)
	terms := strings.Fields(strings.ToLower(role))

	out := make([]Video, 0, len(videos))
	for _, v := range videos {
		title := strings.ToLower(v.Title)
		if strings.Contains(title, companyLower) && containsAny(title, terms) {
			out = append(out, v)
		}
	}
	return out
}
