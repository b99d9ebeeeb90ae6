package catalogentry

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	log "github.com/sirupsen/logrus"

	"github.com/mkrenn/courseflow/catalog"
	"github.com/mkrenn/courseflow/data/db"
)

// stage names surfaced on failures so a caller knows exactly which batch
// did not commit; earlier stages stay committed.
const (
	StageDepartments      = "departments"
	StageCourses          = "courses"
	StageDiscussionGroups = "discussion groups"
	StageSections         = "sections"
	StageMeetings         = "meetings"
	StageInstructors      = "instructors"
)

type Pipeline struct {
	store Store
}

func NewPipeline(store Store) *Pipeline {
	return &Pipeline{store: store}
}

type RunOptions struct {
	// ReplaceAssociations makes this a full-replace run: instructor
	// associations not re-observed on a section or department are dropped
	// instead of being kept additively.
	ReplaceAssociations bool
}

type Summary struct {
	Departments      int `json:"departments"`
	Courses          int `json:"courses"`
	DiscussionGroups int `json:"discussion_groups"`
	Sections         int `json:"sections"`
	Meetings         int `json:"meetings"`
	Instructors      int `json:"instructors"`
}

func stageErr(stage string, err error) error {
	return fmt.Errorf("%s stage did not commit: %w", stage, err)
}

// Run persists the normalized tree in dependency order. Each stage is one
// atomic batch and must fully commit before the next stage starts because
// later stages reference the ids minted earlier. Running the same tree
// twice converges with zero net row-count change.
func (p *Pipeline) Run(
	logger *log.Entry,
	ctx context.Context,
	departments []catalog.NormalizedDepartment,
	opts RunOptions,
) (Summary, error) {
	var summary Summary

	deptParams := make([]UpsertDepartmentParams, len(departments))
	for i, dept := range departments {
		deptParams[i] = UpsertDepartmentParams{Code: dept.Code, Title: dept.Title}
	}
	deptIDs, err := p.store.UpsertDepartments(ctx, deptParams)
	if err != nil {
		logger.Error("Upserting departments error ", err)
		return summary, stageErr(StageDepartments, err)
	}
	summary.Departments = len(deptParams)

	var courseParams []UpsertCourseParams
	for _, dept := range departments {
		for _, course := range dept.Courses {
			courseParams = append(courseParams, UpsertCourseParams{
				DepartmentID: deptIDs[dept.Code],
				Code:         course.Code,
				Title:        nullText(course.Title),
				Description:  nullText(course.Description),
			})
		}
	}
	courseIDs, err := p.store.UpsertCourses(ctx, courseParams)
	if err != nil {
		logger.Error("Upserting courses error ", err)
		return summary, stageErr(StageCourses, err)
	}
	summary.Courses = len(courseParams)

	var groupParams []UpsertDiscussionGroupParams
	seenGroups := make(map[DiscussionGroupKey]struct{})
	for _, dept := range departments {
		for _, course := range dept.Courses {
			courseID := courseIDs[CourseKey{DepartmentID: deptIDs[dept.Code], Code: course.Code}]
			for _, section := range course.Sections {
				if section.Type != catalog.SectionTypeDiscussion {
					continue
				}
				key := DiscussionGroupKey{CourseID: courseID, Term: section.Term}
				if _, ok := seenGroups[key]; ok {
					continue
				}
				seenGroups[key] = struct{}{}
				groupParams = append(groupParams, UpsertDiscussionGroupParams{
					CourseID: courseID,
					Term:     section.Term,
				})
			}
		}
	}
	groupIDs, err := p.store.UpsertDiscussionGroups(ctx, groupParams)
	if err != nil {
		logger.Error("Upserting discussion groups error ", err)
		return summary, stageErr(StageDiscussionGroups, err)
	}
	summary.DiscussionGroups = len(groupParams)

	var sectionParams []UpsertSectionParams
	for _, dept := range departments {
		for _, course := range dept.Courses {
			courseID := courseIDs[CourseKey{DepartmentID: deptIDs[dept.Code], Code: course.Code}]
			for _, section := range course.Sections {
				groupID := pgtype.Int4{}
				if section.Type == catalog.SectionTypeDiscussion {
					if id, ok := groupIDs[DiscussionGroupKey{CourseID: courseID, Term: section.Term}]; ok {
						groupID = pgtype.Int4{Int32: id, Valid: true}
					}
				}
				sectionParams = append(sectionParams, UpsertSectionParams{
					CourseID:          courseID,
					DiscussionGroupID: groupID,
					ClassNumber:       section.ClassNumber,
					Term:              section.Term,
					SectionNumber:     section.SectionNumber,
					Type:              db.SectionTypeEnum(section.Type),
					IsAsync:           section.IsAsync,
				})
			}
		}
	}
	sectionIDs, err := p.store.UpsertSections(ctx, sectionParams)
	if err != nil {
		logger.Error("Upserting sections error ", err)
		return summary, stageErr(StageSections, err)
	}
	summary.Sections = len(sectionParams)

	var meetingParams []UpsertMeetingParams
	for _, dept := range departments {
		for _, course := range dept.Courses {
			for _, section := range course.Sections {
				sectionID := sectionIDs[SectionKey{ClassNumber: section.ClassNumber, Term: section.Term}]
				for _, meeting := range section.Meetings {
					meetingParams = append(meetingParams, UpsertMeetingParams{
						SectionID: sectionID,
						Day:       string(meeting.Day),
						StartTime: db.ClockToTime(meeting.StartTime),
						EndTime:   db.ClockToTime(meeting.EndTime),
						Location:  nullText(meeting.Location),
					})
				}
			}
		}
	}
	if err := p.store.UpsertMeetings(ctx, meetingParams); err != nil {
		logger.Error("Upserting meetings error ", err)
		return summary, stageErr(StageMeetings, err)
	}
	summary.Meetings = len(meetingParams)

	instructorParams := collectInstructors(departments, deptIDs, sectionIDs)
	if err := p.store.UpsertInstructors(ctx, instructorParams, opts.ReplaceAssociations); err != nil {
		logger.Error("Upserting instructors error ", err)
		return summary, stageErr(StageInstructors, err)
	}
	summary.Instructors = len(instructorParams)

	logger.Info("Successfully persisted normalized catalog: ",
		summary.Departments, " departments, ",
		summary.Sections, " sections, ",
		summary.Instructors, " instructors")

	return summary, nil
}

// collectInstructors deduplicates instructors across the whole catalog,
// keyed by email when present and otherwise by name pair, gathering every
// section and department each one appears on.
func collectInstructors(
	departments []catalog.NormalizedDepartment,
	deptIDs map[string]int32,
	sectionIDs map[SectionKey]int32,
) []UpsertInstructorsParams {
	var order []string
	byKey := make(map[string]*UpsertInstructorsParams)

	for _, dept := range departments {
		deptID := deptIDs[dept.Code]
		for _, course := range dept.Courses {
			for _, section := range course.Sections {
				sectionID := sectionIDs[SectionKey{ClassNumber: section.ClassNumber, Term: section.Term}]
				for _, instructor := range section.Instructors {
					key := instructorKey(instructor)
					entry, ok := byKey[key]
					if !ok {
						entry = &UpsertInstructorsParams{
							Instructor: db.UpsertInstructorParams{
								FirstName: instructor.FirstName,
								LastName:  instructor.LastName,
								Title:     instructor.Title,
								Email:     instructor.Email,
								Phone:     instructor.Phone,
							},
						}
						byKey[key] = entry
						order = append(order, key)
					}
					entry.SectionIDs = appendUnique(entry.SectionIDs, sectionID)
					entry.DepartmentIDs = appendUnique(entry.DepartmentIDs, deptID)
				}
			}
		}
	}

	params := make([]UpsertInstructorsParams, len(order))
	for i, key := range order {
		params[i] = *byKey[key]
	}
	return params
}

func instructorKey(instructor catalog.ResolvedInstructor) string {
	if instructor.Email.Valid {
		return "email:" + instructor.Email.String
	}
	return "name:" + instructor.FirstName + "\x00" + instructor.LastName
}

func appendUnique(ids []int32, id int32) []int32 {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func nullText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
