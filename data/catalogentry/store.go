package catalogentry

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkrenn/courseflow/data/db"
)

// PgStore runs each stage batch in its own transaction, so one bad row
// rolls back its whole stage while earlier stages stay committed.
type PgStore struct {
	pool *pgxpool.Pool
}

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

func (s *PgStore) UpsertDepartments(ctx context.Context, params []UpsertDepartmentParams) (map[string]int32, error) {
	ids := make(map[string]int32, len(params))
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)
	q := db.New(tx)
	for _, param := range params {
		dept, err := q.UpsertDepartment(ctx, param)
		if err != nil {
			return nil, err
		}
		ids[dept.Code] = dept.ID
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *PgStore) UpsertCourses(ctx context.Context, params []UpsertCourseParams) (map[CourseKey]int32, error) {
	ids := make(map[CourseKey]int32, len(params))
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)
	q := db.New(tx)
	for _, param := range params {
		course, err := q.UpsertCourse(ctx, param)
		if err != nil {
			return nil, err
		}
		ids[CourseKey{DepartmentID: course.DepartmentID, Code: course.Code}] = course.ID
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *PgStore) UpsertDiscussionGroups(ctx context.Context, params []UpsertDiscussionGroupParams) (map[DiscussionGroupKey]int32, error) {
	ids := make(map[DiscussionGroupKey]int32, len(params))
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)
	q := db.New(tx)
	for _, param := range params {
		group, err := q.UpsertDiscussionGroup(ctx, param)
		if err != nil {
			return nil, err
		}
		ids[DiscussionGroupKey{CourseID: group.CourseID, Term: group.Term}] = group.ID
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *PgStore) UpsertSections(ctx context.Context, params []UpsertSectionParams) (map[SectionKey]int32, error) {
	ids := make(map[SectionKey]int32, len(params))
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)
	q := db.New(tx)
	for _, param := range params {
		section, err := q.UpsertSection(ctx, param)
		if err != nil {
			return nil, err
		}
		ids[SectionKey{ClassNumber: section.ClassNumber, Term: section.Term}] = section.ID
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *PgStore) UpsertMeetings(ctx context.Context, params []UpsertMeetingParams) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	q := db.New(tx)
	for _, param := range params {
		if _, err := q.UpsertMeeting(ctx, param); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *PgStore) UpsertInstructors(ctx context.Context, params []UpsertInstructorsParams, replaceAssociations bool) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	q := db.New(tx)

	if replaceAssociations {
		// only observed sections and departments are cleared; rows this
		// run never saw keep whatever associations they had
		clearedSections := make(map[int32]struct{})
		clearedDepartments := make(map[int32]struct{})
		for _, param := range params {
			for _, sectionID := range param.SectionIDs {
				if _, ok := clearedSections[sectionID]; ok {
					continue
				}
				clearedSections[sectionID] = struct{}{}
				if err := q.ClearSectionInstructors(ctx, sectionID); err != nil {
					return err
				}
			}
			for _, deptID := range param.DepartmentIDs {
				if _, ok := clearedDepartments[deptID]; ok {
					continue
				}
				clearedDepartments[deptID] = struct{}{}
				if err := q.ClearDepartmentInstructors(ctx, deptID); err != nil {
					return err
				}
			}
		}
	}

	for _, param := range params {
		instructor, err := q.UpsertInstructor(ctx, param.Instructor)
		if err != nil {
			return err
		}
		for _, sectionID := range param.SectionIDs {
			if err := q.AddSectionInstructor(ctx, sectionID, instructor.ID); err != nil {
				return err
			}
		}
		for _, deptID := range param.DepartmentIDs {
			if err := q.AddDepartmentInstructor(ctx, deptID, instructor.ID); err != nil {
				return err
			}
		}
	}
	return tx.Commit(ctx)
}
