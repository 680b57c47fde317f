package domain

import "testing"

func TestBuildQueriesBase(t *testing.T) {
	got := BuildQueries("Google", "")
	want := []string{
		`"Google" interview questions`,
		`Google "technical interview"`,
		`Google "coding interview"`,
		`Google "interview preparation"`,
		`Google "interview experience"`,
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("query[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildQueriesRoleFirst(t *testing.T) {
	got := BuildQueries("Stripe", "  Backend Engineer ")
	if len(got) != 9 {
		t.Fatalf("len = %d, want 9: %v", len(got), got)
	}

	wantRole := []string{
		`"Stripe" backend engineer interview`,
		`Stripe backend engineer "interview questions"`,
		`Stripe backend engineer "technical interview"`,
		`backend engineer "interview preparation" Stripe`,
	}
	for i := range wantRole {
		if got[i] != wantRole[i] {
			t.Errorf("query[%d] = %q, want %q", i, got[i], wantRole[i])
		}
	}
	if got[4] != `"Stripe" interview questions` {
		t.Errorf("base queries should follow role queries, got %q", got[4])
	}
}

func TestBuildQueriesBlankRole(t *testing.T) {
	for _, role := range []string{"", "   ", "\t"} {
		if got := BuildQueries("Netflix", role); len(got) != 5 {
			t.Errorf("role %q: len = %d, want 5", role, len(got))
		}
	}
}

func TestNormalizeRole(t *testing.T) {
	if got := NormalizeRole("  Data Scientist\n"); got != "data scientist" {
		t.Errorf("NormalizeRole() = %q", got)
	}
}
