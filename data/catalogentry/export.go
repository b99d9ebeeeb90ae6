// Package catalogentry persists a normalized catalog tree through the six
// dependency-ordered upsert stages. It is the only place the rest of the
// project needs for writing class data, which keeps the set of db functions
// in play easy to verify.
package catalogentry

import (
	"context"

	"github.com/mkrenn/courseflow/data/db"
)

type UpsertDepartmentParams = db.UpsertDepartmentParams
type UpsertCourseParams = db.UpsertCourseParams
type UpsertDiscussionGroupParams = db.UpsertDiscussionGroupParams
type UpsertSectionParams = db.UpsertSectionParams
type UpsertMeetingParams = db.UpsertMeetingParams

// UpsertInstructorsParams bundles one distinct instructor with every
// section and department association observed for it this run.
type UpsertInstructorsParams struct {
	Instructor    db.UpsertInstructorParams
	SectionIDs    []int32
	DepartmentIDs []int32
}

type CourseKey struct {
	DepartmentID int32
	Code         string
}

type DiscussionGroupKey struct {
	CourseID int32
	Term     string
}

type SectionKey struct {
	ClassNumber string
	Term        string
}

// Store is the upsert-capable boundary to the relational backend. Each
// method is one stage batch and must commit or roll back as a unit; the id
// maps it returns are how later stages reference earlier stages' rows.
type Store interface {
	UpsertDepartments(ctx context.Context, params []UpsertDepartmentParams) (map[string]int32, error)
	UpsertCourses(ctx context.Context, params []UpsertCourseParams) (map[CourseKey]int32, error)
	UpsertDiscussionGroups(ctx context.Context, params []UpsertDiscussionGroupParams) (map[DiscussionGroupKey]int32, error)
	UpsertSections(ctx context.Context, params []UpsertSectionParams) (map[SectionKey]int32, error)
	UpsertMeetings(ctx context.Context, params []UpsertMeetingParams) error
	UpsertInstructors(ctx context.Context, params []UpsertInstructorsParams, replaceAssociations bool) error
}
