package directory

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mkrenn/courseflow/catalog"
)

func text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func snapshot() []Entry {
	return []Entry{
		{Name: "Jon Smith", Title: text("Professor"), Email: text("jon.smith@example.edu"), Phone: text("555-0100")},
		{Name: "Jane Doe", Title: text("Lecturer"), Email: text("jane.doe@example.edu")},
		{Name: "Maria Garcia", Email: text("maria.garcia@example.edu")},
	}
}

func TestNewMatcherEmptyDirectoryFailsFast(t *testing.T) {
	if _, err := NewMatcher(nil); err != ErrEmptyDirectory {
		t.Errorf("expected ErrEmptyDirectory got %v", err)
	}
	// entries that index to nothing are as fatal as none at all
	if _, err := NewMatcher([]Entry{{Name: "  "}}); err != ErrEmptyDirectory {
		t.Errorf("expected ErrEmptyDirectory for blank names got %v", err)
	}
}

func TestResolveExactMatch(t *testing.T) {
	m, err := NewMatcher(snapshot())
	if err != nil {
		t.Fatal(err)
	}
	resolved := m.Resolve(catalog.InstructorName{FirstName: "Jane", LastName: "Doe"})
	if !resolved.Email.Valid || resolved.Email.String != "jane.doe@example.edu" {
		t.Errorf("exact match did not resolve email: %+v", resolved)
	}
	if !resolved.Title.Valid || resolved.Title.String != "Lecturer" {
		t.Errorf("exact match did not resolve title: %+v", resolved)
	}
	if resolved.Phone.Valid {
		t.Errorf("phone should stay null when the directory has none: %+v", resolved)
	}
}

// a directory page can list the same display name twice; the first
// occurrence wins and later ones are ignored
func TestDuplicateDisplayNamesFirstWriteWins(t *testing.T) {
	m, err := NewMatcher([]Entry{
		{Name: "Jane Doe", Email: text("first@example.edu")},
		{Name: "Jane Doe", Email: text("second@example.edu")},
	})
	if err != nil {
		t.Fatal(err)
	}
	resolved := m.Resolve(catalog.InstructorName{FirstName: "Jane", LastName: "Doe"})
	if resolved.Email.String != "first@example.edu" {
		t.Errorf("expected the first scraped entry to win, got %q", resolved.Email.String)
	}
}

// panicSearcher proves an exact hit never reaches the fuzzy tier
type panicSearcher struct{}

func (panicSearcher) Best(query string, candidates []string) (string, int) {
	panic("fuzzy search ran for an exact match")
}

func TestExactMatchNeverFallsThroughToFuzzy(t *testing.T) {
	m, err := NewMatcher(snapshot(), WithSearcher(panicSearcher{}))
	if err != nil {
		t.Fatal(err)
	}
	resolved := m.Resolve(catalog.InstructorName{FirstName: "Jon", LastName: "Smith"})
	if !resolved.Email.Valid {
		t.Errorf("exact match should have resolved: %+v", resolved)
	}
}

func TestResolveFuzzyAtThresholdBoundary(t *testing.T) {
	// "john smith" is one edit away from the directory's "jon smith"
	name := catalog.InstructorName{FirstName: "John", LastName: "Smith"}

	tests := []struct {
		name        string
		maxDistance int
		wantMatch   bool
	}{
		{"distance under threshold", 2, true},
		{"distance exactly at threshold", 1, true},
		{"distance just outside threshold", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatcher(snapshot(), WithMaxDistance(tt.maxDistance))
			if err != nil {
				t.Fatal(err)
			}
			resolved := m.Resolve(name)
			if resolved.Email.Valid != tt.wantMatch {
				t.Errorf("maxDistance %d: match = %v, want %v (resolved %+v)",
					tt.maxDistance, resolved.Email.Valid, tt.wantMatch, resolved)
			}
			if tt.wantMatch && resolved.Email.String != "jon.smith@example.edu" {
				t.Errorf("fuzzy match found the wrong person: %q", resolved.Email.String)
			}
			// the parsed name is always kept even when contact info resolves
			if resolved.FirstName != "John" || resolved.LastName != "Smith" {
				t.Errorf("resolution replaced the parsed name: %+v", resolved)
			}
		})
	}
}

func TestResolveTotalMissIsNullNotError(t *testing.T) {
	m, err := NewMatcher(snapshot())
	if err != nil {
		t.Fatal(err)
	}
	resolved := m.Resolve(catalog.InstructorName{FirstName: "Zebulon", LastName: "Quarterstaff"})
	if resolved.Title.Valid || resolved.Email.Valid || resolved.Phone.Valid {
		t.Errorf("total miss must leave all contact fields null: %+v", resolved)
	}
}

func TestResolvePlaceholderSkipsMatching(t *testing.T) {
	m, err := NewMatcher(snapshot(), WithSearcher(panicSearcher{}))
	if err != nil {
		t.Fatal(err)
	}
	resolved := m.Resolve(catalog.PlaceholderInstructor)
	if resolved.FirstName != "-" || resolved.LastName != "-" {
		t.Errorf("placeholder name changed: %+v", resolved)
	}
	if resolved.Title.Valid || resolved.Email.Valid || resolved.Phone.Valid {
		t.Errorf("placeholder must not pick up contact info: %+v", resolved)
	}
}

// countingSearcher shows the memo cache keeps repeated lookups from
// re-running the similarity search
type countingSearcher struct {
	calls int
	inner Searcher
}

func (c *countingSearcher) Best(query string, candidates []string) (string, int) {
	c.calls++
	return c.inner.Best(query, candidates)
}

func TestResolveMemoizesByNameKey(t *testing.T) {
	counter := &countingSearcher{inner: levenshteinSearcher{}}
	m, err := NewMatcher(snapshot(), WithSearcher(counter))
	if err != nil {
		t.Fatal(err)
	}
	name := catalog.InstructorName{FirstName: "John", LastName: "Smith"}
	first := m.Resolve(name)
	for i := 0; i < 10; i++ {
		again := m.Resolve(name)
		if again != first {
			t.Fatalf("resolution is not stable: %+v vs %+v", again, first)
		}
	}
	if counter.calls != 1 {
		t.Errorf("expected one fuzzy search for a repeated name, got %d", counter.calls)
	}
}
