package normalize

import (
	"github.com/mkrenn/courseflow/catalog"
	"golang.org/x/sync/errgroup"
)

// Catalog walks the whole raw tree and produces the normalized tree.
// Semesters are flattened away: the term lands on each section instead of
// staying a container. Departments do not share any state so they are
// normalized concurrently; the resolver must be safe for concurrent use.
func Catalog(departments []catalog.RawDepartment, resolver Resolver) []catalog.NormalizedDepartment {
	normalized := make([]catalog.NormalizedDepartment, len(departments))

	var eg errgroup.Group
	for i, dept := range departments {
		i, dept := i, dept
		eg.Go(func() error {
			normalized[i] = department(dept, resolver)
			return nil
		})
	}
	// per-section parsing degrades instead of erroring so there is
	// nothing for the group to report
	_ = eg.Wait()

	return normalized
}

func department(dept catalog.RawDepartment, resolver Resolver) catalog.NormalizedDepartment {
	courses := make([]catalog.NormalizedCourse, len(dept.Courses))
	for i, course := range dept.Courses {
		var sections []catalog.NormalizedSection
		for _, semester := range course.Semesters {
			for _, raw := range semester.Sections {
				sections = append(sections, Section(raw, semester.Term, resolver))
			}
		}
		courses[i] = catalog.NormalizedCourse{
			Code:        course.Code,
			Title:       course.Title,
			Description: course.Description,
			Sections:    sections,
		}
	}
	return catalog.NormalizedDepartment{
		Code:    dept.Code,
		Title:   dept.Title,
		Courses: courses,
	}
}
