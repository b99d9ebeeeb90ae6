package catalogentry

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkrenn/courseflow/data/testdb"
)

var ingestionTables = []string{
	"departments", "courses", "discussion_groups", "sections",
	"meetings", "instructors", "section_instructors", "department_instructors",
}

func setupStorePool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if os.Getenv("TEST_DB_CONN") == "" {
		t.Skip("TEST_DB_CONN is not set")
	}
	if err := testdb.SetupTestDb(); err != nil {
		t.Fatal(err)
	}
	pool, err := pgxpool.New(context.Background(), os.Getenv("TEST_DB_CONN"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func tableCounts(t *testing.T, pool *pgxpool.Pool) map[string]int {
	t.Helper()
	counts := make(map[string]int, len(ingestionTables))
	for _, table := range ingestionTables {
		var count int
		if err := pool.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&count); err != nil {
			t.Fatal(err)
		}
		counts[table] = count
	}
	return counts
}

func TestPgStoreIngestionIsIdempotent(t *testing.T) {
	pool := setupStorePool(t)
	ctx := context.Background()
	pipeline := NewPipeline(NewPgStore(pool))

	first, err := pipeline.Run(testLogger(), ctx, sampleTree(), RunOptions{})
	if err != nil {
		t.Fatal(err)
	}
	want := Summary{Departments: 1, Courses: 1, DiscussionGroups: 1, Sections: 2, Meetings: 3, Instructors: 2}
	if first != want {
		t.Errorf("summary = %+v, want %+v", first, want)
	}
	countsAfterFirst := tableCounts(t, pool)

	second, err := pipeline.Run(testLogger(), ctx, sampleTree(), RunOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if second != first {
		t.Errorf("second run summary %+v differs from first %+v", second, first)
	}
	for table, count := range tableCounts(t, pool) {
		if count != countsAfterFirst[table] {
			t.Errorf("re-ingesting changed %s row count: %d became %d",
				table, countsAfterFirst[table], count)
		}
	}

	// the discussion section points at its group, the lecture does not
	var lectureGroup, discussionGroup pgtype.Int4
	err = pool.QueryRow(ctx,
		"SELECT discussion_group_id FROM sections WHERE class_number = $1 AND term = $2",
		"10001", "FALL2025").Scan(&lectureGroup)
	if err != nil {
		t.Fatal(err)
	}
	err = pool.QueryRow(ctx,
		"SELECT discussion_group_id FROM sections WHERE class_number = $1 AND term = $2",
		"10002", "FALL2025").Scan(&discussionGroup)
	if err != nil {
		t.Fatal(err)
	}
	if lectureGroup.Valid {
		t.Errorf("lecture section has a discussion group id: %+v", lectureGroup)
	}
	if !discussionGroup.Valid {
		t.Error("discussion section is missing its group id")
	}
}

func TestPgStoreChangedLocationUpdatesInPlace(t *testing.T) {
	pool := setupStorePool(t)
	ctx := context.Background()
	pipeline := NewPipeline(NewPgStore(pool))

	if _, err := pipeline.Run(testLogger(), ctx, sampleTree(), RunOptions{}); err != nil {
		t.Fatal(err)
	}
	countsBefore := tableCounts(t, pool)

	const fridayMeeting = `
SELECT m.id, m.location FROM meetings m
JOIN sections s ON s.id = m.section_id
WHERE s.class_number = $1 AND s.term = $2 AND m.day = 'FRIDAY'
`
	var idBefore int32
	var locationBefore pgtype.Text
	if err := pool.QueryRow(ctx, fridayMeeting, "10002", "FALL2025").
		Scan(&idBefore, &locationBefore); err != nil {
		t.Fatal(err)
	}
	if locationBefore.String != "Annex 2" {
		t.Fatalf("unexpected starting location %q", locationBefore.String)
	}

	moved := sampleTree()
	moved[0].Courses[0].Sections[1].Meetings[0].Location = "Annex 5"
	if _, err := pipeline.Run(testLogger(), ctx, moved, RunOptions{}); err != nil {
		t.Fatal(err)
	}

	for table, count := range tableCounts(t, pool) {
		if count != countsBefore[table] {
			t.Errorf("moving a meeting changed %s row count: %d became %d",
				table, countsBefore[table], count)
		}
	}
	var idAfter int32
	var locationAfter pgtype.Text
	if err := pool.QueryRow(ctx, fridayMeeting, "10002", "FALL2025").
		Scan(&idAfter, &locationAfter); err != nil {
		t.Fatal(err)
	}
	if idAfter != idBefore {
		t.Errorf("meeting row was replaced rather than updated: id %d became %d", idBefore, idAfter)
	}
	if locationAfter.String != "Annex 5" {
		t.Errorf("meeting location not updated: %+v", locationAfter)
	}
}
