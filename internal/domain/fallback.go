package domain

import "strings"

type fallbackEntry struct {
	key       string
	resources []Resource
}

var metaResources = []Resource{
	{Name: "Meta/Facebook Interview Questions", URL: "https://github.com/twowaits/SDE-Interview-Questions/tree/master/Facebook"},
	{Name: "Meta Technical Interview Guide", URL: "https://github.com/khanhnamle1994/cracking-the-data-science-interview"},
	{Name: "Facebook Interview Resources", URL: "https://github.com/krishnadey30/LeetCode-Questions-CompanyWise/blob/master/facebook_alltime.txt"},
}

// companyFallbacks is ordered: the first matching key wins on overlaps.
var companyFallbacks = []fallbackEntry{
	{"amazon", []Resource{
		{Name: "Amazon Interview Guide", URL: "https://github.com/jwasham/coding-interview-university"},
		{Name: "Amazon Assessment Questions", URL: "https://github.com/twowaits/SDE-Interview-Questions/tree/master/Amazon"},
		{Name: "Amazon Interview Questions", URL: "https://github.com/krishnadey30/LeetCode-Questions-CompanyWise/blob/master/amazon_alltime.txt"},
	}},
	{"google", []Resource{
		{Name: "Google Interview Questions", URL: "https://github.com/mgechev/google-interview-preparation-problems"},
		{Name: "Google Tech Dev Guide", URL: "https://github.com/jayshah19949596/CodingInterviews"},
		{Name: "Google Interview Resources", URL: "https://github.com/krishnadey30/LeetCode-Questions-CompanyWise/blob/master/google_alltime.txt"},
	}},
	{"facebook", metaResources},
	{"meta", metaResources},
	{"microsoft", []Resource{
		{Name: "Microsoft Interview Questions", URL: "https://github.com/twowaits/SDE-Interview-Questions/tree/master/Microsoft"},
		{Name: "Microsoft Interview Preparation", URL: "https://github.com/Olshansk/interview"},
		{Name: "Microsoft Interview Resources", URL: "https://github.com/krishnadey30/LeetCode-Questions-CompanyWise/blob/master/microsoft_alltime.txt"},
	}},
	{"apple", []Resource{
		{Name: "Apple Interview Preparation", URL: "https://github.com/hxu296/leetcode-company-wise-problems-2022"},
		{Name: "Apple Interview Questions", URL: "https://github.com/krishnadey30/LeetCode-Questions-CompanyWise/blob/master/apple_alltime.txt"},
		{Name: "Apple Technical Interview", URL: "https://github.com/checkcheckzz/system-design-interview"},
	}},
	{"netflix", []Resource{
		{Name: "Netflix Interview Questions", URL: "https://github.com/twowaits/SDE-Interview-Questions"},
		{Name: "Netflix Technical Interview", URL: "https://github.com/yangshun/tech-interview-handbook"},
	}},
	{"tesla", []Resource{
		{Name: "Tesla Interview Prep", URL: "https://github.com/krishnadey30/LeetCode-Questions-CompanyWise"},
		{Name: "Tesla Technical Questions", URL: "https://github.com/h5bp/Front-end-Developer-Interview-Questions"},
	}},
}

// roleFallbacks is ordered the same way. There is deliberately no front-end
// category: front-end roles only get the company entries.
var roleFallbacks = []fallbackEntry{
	{"software engineer", []Resource{
		{Name: "Software Engineering Interview Preparation", URL: "https://github.com/jwasham/coding-interview-university"},
		{Name: "Software Engineer Coding Questions", URL: "https://github.com/twowaits/SDE-Interview-Questions"},
	}},
	{"backend", []Resource{
		{Name: "Backend Interview Questions", URL: "https://github.com/arialdomartini/Back-End-Developer-Interview-Questions"},
		{Name: "System Design for Backend Engineers", URL: "https://github.com/donnemartin/system-design-primer"},
	}},
	{"data scientist", []Resource{
		{Name: "Data Science Interview Resources", URL: "https://github.com/khanhnamle1994/cracking-the-data-science-interview"},
		{Name: "Data Science Interview Questions", URL: "https://github.com/alexeygrigorev/data-science-interviews"},
	}},
	{"machine learning", []Resource{
		{Name: "Machine Learning Interviews", URL: "https://github.com/chiphuyen/machine-learning-systems-design"},
		{Name: "ML Interview Guide", URL: "https://github.com/khangich/machine-learning-interview"},
	}},
	{"devops", []Resource{
		{Name: "DevOps Interview Questions", URL: "https://github.com/bregman-arie/devops-exercises"},
		{Name: "DevOps Resource Collection", URL: "https://github.com/MichaelCade/90DaysOfDevOps"},
	}},
}

// FallbackResources returns curated resources for well-known companies, used
// when the live search found nothing. Company keys match by containment in
// either direction. Role resources are prepended only when both the company
// and the role match. Unknown companies yield an empty list.
func FallbackResources(company, role string) []Resource {
	companyLower := strings.ToLower(company)

	var companySpecific []Resource
	for _, e := range companyFallbacks {
		if strings.Contains(companyLower, e.key) || strings.Contains(e.key, companyLower) {
			companySpecific = e.resources
			break
		}
	}

	if role != "" && len(companySpecific) > 0 {
		if roleSpecific := matchRole(strings.ToLower(role)); len(roleSpecific) > 0 {
			out := make([]Resource, 0, len(roleSpecific)+len(companySpecific))
			out = append(out, roleSpecific...)
			return append(out, companySpecific...)
		}
	}

	// copy so callers can't alter the table
	return append([]Resource{}, companySpecific...)
}

func matchRole(roleLower string) []Resource {
	for _, e := range roleFallbacks {
		if strings.Contains(roleLower, e.key) || containsAny(roleLower, strings.Fields(e.key)) {
			return e.resources
		}
	}
	return nil
}
