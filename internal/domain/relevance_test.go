package domain

import (
	"fmt"
	"strings"
	"testing"
)

func rec(name, desc, url string) RepoRecord {
	return RepoRecord{Name: name, FullName: "owner/" + name, HTMLURL: url, Description: desc}
}

func names(rs []Resource) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func TestFilterResourcesGates(t *testing.T) {
	tests := []struct {
		name    string
		record  RepoRecord
		company string
		role    string
		keep    bool
	}{
		{
			name:    "company and keyword",
			record:  rec("google-prep", "Google interview questions collection", "https://github.com/a/1"),
			company: "Google",
			keep:    true,
		},
		{
			name:    "keywords without company",
			record:  rec("faang-prep", "leetcode interview questions coding challenge assessment", "https://github.com/a/2"),
			company: "Google",
			keep:    false,
		},
		{
			name:    "company without keyword",
			record:  rec("google-maps-clone", "A clone of Google Maps", "https://github.com/a/3"),
			company: "Google",
			keep:    false,
		},
		{
			name:    "missing description still evaluated",
			record:  rec("google-leetcode", "", "https://github.com/a/4"),
			company: "google",
			keep:    true,
		},
		{
			name:    "missing description without keyword",
			record:  rec("google-notes", "", "https://github.com/a/5"),
			company: "google",
			keep:    false,
		},
		{
			name:    "missing url",
			record:  rec("google-leetcode", "interview prep", ""),
			company: "google",
			keep:    false,
		},
		{
			name:    "case insensitive",
			record:  rec("AMAZON-OA", "Amazon ONLINE ASSESSMENT answers", "https://github.com/a/6"),
			company: "aMaZoN",
			keep:    true,
		},
		{
			name:    "role text extends keywords",
			record:  rec("google-sitereliability", "notes", "https://github.com/a/7"),
			company: "google",
			role:    " Site Reliability ",
			keep:    true,
		},
		{
			name:    "role text ignored without role",
			record:  rec("google-sitereliability", "notes", "https://github.com/a/8"),
			company: "google",
			keep:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterResources([]RepoRecord{tt.record}, tt.company, tt.role, DefaultMaxResources)
			if kept := len(got) == 1; kept != tt.keep {
				t.Errorf("FilterResources() kept = %v, want %v (got %v)", kept, tt.keep, got)
			}
			if tt.keep && len(got) == 1 {
				if got[0].Name != tt.record.FullName || got[0].URL != tt.record.HTMLURL {
					t.Errorf("resource = %+v, want full_name/html_url of record", got[0])
				}
			}
		})
	}
}

func TestFilterResourcesNeverLeaksUngatedRecords(t *testing.T) {
	company := "Stripe"
	var records []RepoRecord
	for i := 0; i < 40; i++ {
		desc := "interview questions"
		if i%3 == 0 {
			desc = "payments sdk" // no keyword
		}
		name := fmt.Sprintf("stripe-%d", i)
		if i%4 == 0 {
			name = fmt.Sprintf("misc-%d", i) // no company
		}
		records = append(records, rec(name, desc, fmt.Sprintf("https://github.com/x/%d", i)))
	}

	got := FilterResources(records, company, "", DefaultMaxResources)
	if len(got) == 0 {
		t.Fatal("expected some resources")
	}
	for _, r := range got {
		lower := strings.ToLower(r.Name)
		if !strings.Contains(lower, "stripe") {
			t.Errorf("resource %q lacks company name", r.Name)
		}
	}
}

func TestFilterResourcesDeduplicates(t *testing.T) {
	records := []RepoRecord{
		{Name: "google-prep", FullName: "first/google-prep", HTMLURL: "https://github.com/dup", Description: "google interview prep"},
		{Name: "google-prep-fork", FullName: "second/google-prep-fork", HTMLURL: "https://github.com/dup", Description: "google interview prep"},
		rec("google-oa", "google online assessment", "https://github.com/other"),
	}

	got := FilterResources(records, "google", "", DefaultMaxResources)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2: %v", len(got), got)
	}
	if got[0].Name != "first/google-prep" {
		t.Errorf("first encountered should win, got %q", got[0].Name)
	}
	if got[1].URL != "https://github.com/other" {
		t.Errorf("second = %+v", got[1])
	}
}

func TestFilterResourcesRolePriorityIsStable(t *testing.T) {
	records := []RepoRecord{
		rec("google-a", "google interview questions", "https://github.com/A"),
		rec("google-b", "google backend interview questions", "https://github.com/B"),
		rec("google-c", "google interview experience", "https://github.com/C"),
		rec("google-d", "backend google leetcode", "https://github.com/D"),
	}

	got := FilterResources(records, "google", "Backend", DefaultMaxResources)
	want := []string{"owner/google-b", "owner/google-d", "owner/google-a", "owner/google-c"}
	if strings.Join(names(got), ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", names(got), want)
	}

	// without a role the input order is untouched
	got = FilterResources(records, "google", "", DefaultMaxResources)
	want = []string{"owner/google-a", "owner/google-b", "owner/google-c", "owner/google-d"}
	if strings.Join(names(got), ",") != strings.Join(want, ",") {
		t.Errorf("order without role = %v, want %v", names(got), want)
	}
}

func TestFilterResourcesCap(t *testing.T) {
	var records []RepoRecord
	for i := 0; i < 30; i++ {
		records = append(records, rec(fmt.Sprintf("google-%02d", i), "google leetcode", fmt.Sprintf("https://github.com/g/%d", i)))
	}

	got := FilterResources(records, "google", "", 8)
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
	if got[0].Name != "owner/google-00" || got[7].Name != "owner/google-07" {
		t.Errorf("cap should keep the first records in order, got %v", names(got))
	}

	if got := FilterResources(records, "google", "", 0); len(got) != DefaultMaxResources {
		t.Errorf("non-positive max should default to %d, got %d", DefaultMaxResources, len(got))
	}
}

func TestFilterResourcesStopsAtTwiceMax(t *testing.T) {
	var records []RepoRecord
	// 2 x max generic matches come first, role matches only after them
	for i := 0; i < 4; i++ {
		records = append(records, rec(fmt.Sprintf("google-generic-%d", i), "google leetcode", fmt.Sprintf("https://github.com/gen/%d", i)))
	}
	records = append(records, rec("google-devops", "google devops interview prep", "https://github.com/role/1"))

	got := FilterResources(records, "google", "devops", 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, r := range got {
		if r.Name == "owner/google-devops" {
			t.Error("scan should stop after 2 x max accepted records")
		}
	}

	// with room for one more candidate the role match is found and promoted
	got = FilterResources(records, "google", "devops", 3)
	if got[0].Name != "owner/google-devops" {
		t.Errorf("role match should be first, got %v", names(got))
	}
}

func TestFilterResourcesEmpty(t *testing.T) {
	got := FilterResources(nil, "google", "backend", DefaultMaxResources)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", got)
	}
}

func TestInterviewKeywords(t *testing.T) {
	base := InterviewKeywords("")
	if len(base) != 11 {
		t.Fatalf("base keyword count = %d, want 11", len(base))
	}

	withRole := InterviewKeywords("  Data Scientist ")
	if len(withRole) != 13 {
		t.Fatalf("keyword count with role = %d, want 13", len(withRole))
	}
	if withRole[11] != "data scientist" || withRole[12] != "datascientist" {
		t.Errorf("role keywords = %v", withRole[11:])
	}

	// the shared list must not grow between calls
	if len(InterviewKeywords("")) != 11 {
		t.Error("InterviewKeywords mutated the base list")
	}
}
