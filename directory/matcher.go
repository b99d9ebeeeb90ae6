package directory

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/mkrenn/courseflow/catalog"
)

// DefaultMaxDistance is deliberately strict: leaving an instructor
// unresolved beats attaching someone else's email and phone number.
const DefaultMaxDistance = 2

var ErrEmptyDirectory = errors.New("directory snapshot is empty")

// Matcher is built once per ingestion run from the directory snapshot and
// is immutable afterwards apart from its memo cache. Resolution is a pure
// function of the name key and the snapshot, so repeated runs over
// unchanged data resolve identically.
type Matcher struct {
	entries     map[string]Entry
	names       []string
	searcher    Searcher
	maxDistance int

	mu    sync.Mutex
	cache map[string]catalog.ResolvedInstructor
}

type MatcherOption func(*Matcher)

func WithSearcher(searcher Searcher) MatcherOption {
	return func(m *Matcher) { m.searcher = searcher }
}

func WithMaxDistance(distance int) MatcherOption {
	return func(m *Matcher) { m.maxDistance = distance }
}

// NewMatcher indexes the directory snapshot. Duplicate display names on the
// scraped page keep the first occurrence. An empty snapshot is a fatal
// precondition for the whole run, not a degradation.
func NewMatcher(entries []Entry, opts ...MatcherOption) (*Matcher, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyDirectory
	}
	m := &Matcher{
		entries:     make(map[string]Entry, len(entries)),
		searcher:    levenshteinSearcher{},
		maxDistance: DefaultMaxDistance,
		cache:       make(map[string]catalog.ResolvedInstructor),
	}
	for _, opt := range opts {
		opt(m)
	}
	for _, entry := range entries {
		key := strings.ToLower(strings.TrimSpace(entry.Name))
		if key == "" {
			continue
		}
		if _, ok := m.entries[key]; ok {
			continue
		}
		m.entries[key] = entry
		m.names = append(m.names, key)
	}
	if len(m.entries) == 0 {
		return nil, ErrEmptyDirectory
	}
	sort.Strings(m.names)
	return m, nil
}

// Resolve attaches directory contact info to a parsed name: exact display
// name lookup first, then the similarity index gated by the distance
// threshold. A total miss gives explicit null contact fields and is never
// an error. Results are memoized per name key, so a name seen on many
// sections is resolved once.
func (m *Matcher) Resolve(name catalog.InstructorName) catalog.ResolvedInstructor {
	resolved := catalog.ResolvedInstructor{
		FirstName: name.FirstName,
		LastName:  name.LastName,
	}
	if name == catalog.PlaceholderInstructor {
		return resolved
	}
	key := strings.ToLower(name.FirstName + " " + name.LastName)

	m.mu.Lock()
	defer m.mu.Unlock()
	if cached, ok := m.cache[key]; ok {
		return cached
	}

	if entry, ok := m.entries[key]; ok {
		resolved.Title = entry.Title
		resolved.Email = entry.Email
		resolved.Phone = entry.Phone
	} else if best, distance := m.searcher.Best(key, m.names); best != "" && distance <= m.maxDistance {
		entry := m.entries[best]
		resolved.Title = entry.Title
		resolved.Email = entry.Email
		resolved.Phone = entry.Phone
	}

	m.cache[key] = resolved
	return resolved
}
