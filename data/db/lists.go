package db

import "context"

// read side queries for the catalog api

type ListDepartmentsParams struct {
	Limitvalue  int32 `json:"limitvalue"`
	Offsetvalue int32 `json:"offsetvalue"`
}

const listDepartments = `
SELECT id, code, title FROM departments ORDER BY code
LIMIT $1 OFFSET $2
`

func (q *Queries) ListDepartments(ctx context.Context, arg ListDepartmentsParams) ([]Department, error) {
	rows, err := q.db.Query(ctx, listDepartments, arg.Limitvalue, arg.Offsetvalue)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Department
	for rows.Next() {
		var i Department
		if err := rows.Scan(&i.ID, &i.Code, &i.Title); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

type ListCoursesForDepartmentParams struct {
	DepartmentCode string `json:"department_code"`
	Limitvalue     int32  `json:"limitvalue"`
	Offsetvalue    int32  `json:"offsetvalue"`
}

const listCoursesForDepartment = `
SELECT c.id, c.department_id, c.code, c.title, c.description
FROM courses c
JOIN departments d ON d.id = c.department_id
WHERE d.code = $1
ORDER BY c.code
LIMIT $2 OFFSET $3
`

func (q *Queries) ListCoursesForDepartment(ctx context.Context, arg ListCoursesForDepartmentParams) ([]Course, error) {
	rows, err := q.db.Query(ctx, listCoursesForDepartment, arg.DepartmentCode, arg.Limitvalue, arg.Offsetvalue)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Course
	for rows.Next() {
		var i Course
		if err := rows.Scan(&i.ID, &i.DepartmentID, &i.Code, &i.Title, &i.Description); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

type ListSectionsForCourseParams struct {
	DepartmentCode string `json:"department_code"`
	CourseCode     string `json:"course_code"`
}

const listSectionsForCourse = `
SELECT s.id, s.course_id, s.discussion_group_id, s.class_number, s.term, s.section_number, s.type, s.is_async
FROM sections s
JOIN courses c ON c.id = s.course_id
JOIN departments d ON d.id = c.department_id
WHERE d.code = $1 AND c.code = $2
ORDER BY s.term, s.section_number
`

func (q *Queries) ListSectionsForCourse(ctx context.Context, arg ListSectionsForCourseParams) ([]Section, error) {
	rows, err := q.db.Query(ctx, listSectionsForCourse, arg.DepartmentCode, arg.CourseCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Section
	for rows.Next() {
		var i Section
		if err := rows.Scan(&i.ID, &i.CourseID, &i.DiscussionGroupID, &i.ClassNumber,
			&i.Term, &i.SectionNumber, &i.Type, &i.IsAsync); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listMeetingsForSection = `
SELECT id, section_id, day, start_time, end_time, location FROM meetings
WHERE section_id = $1
ORDER BY day, start_time
`

func (q *Queries) ListMeetingsForSection(ctx context.Context, sectionID int32) ([]Meeting, error) {
	rows, err := q.db.Query(ctx, listMeetingsForSection, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Meeting
	for rows.Next() {
		var i Meeting
		if err := rows.Scan(&i.ID, &i.SectionID, &i.Day, &i.StartTime, &i.EndTime, &i.Location); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listInstructorsForSection = `
SELECT i.id, i.first_name, i.last_name, i.title, i.email, i.phone
FROM instructors i
JOIN section_instructors si ON si.instructor_id = i.id
WHERE si.section_id = $1
ORDER BY i.last_name, i.first_name
`

func (q *Queries) ListInstructorsForSection(ctx context.Context, sectionID int32) ([]Instructor, error) {
	rows, err := q.db.Query(ctx, listInstructorsForSection, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Instructor
	for rows.Next() {
		var i Instructor
		if err := rows.Scan(&i.ID, &i.FirstName, &i.LastName, &i.Title, &i.Email, &i.Phone); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
