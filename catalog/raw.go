package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCatalog means the scraper handed over nothing to work with.
// This is a fatal precondition, not a parse degradation.
var ErrEmptyCatalog = errors.New("raw catalog is empty")

// RawSection is one row exactly as scraped from the schedule pages.
// Days/Time may carry multiple meeting patterns separated by `|` and
// Instructor may carry multiple names separated by `|`.
type RawSection struct {
	Section     string `json:"section"`
	ClassNumber string `json:"classNumber"`
	Days        string `json:"days"`
	Time        string `json:"time"`
	Instructor  string `json:"instructor"`
	Location    string `json:"location"`
}

type RawSemester struct {
	Term     string       `json:"term"`
	Sections []RawSection `json:"sections"`
}

type RawCourse struct {
	Code        string        `json:"code"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Semesters   []RawSemester `json:"semesters"`
}

type RawDepartment struct {
	Code    string      `json:"code"`
	Title   string      `json:"title"`
	Courses []RawCourse `json:"courses"`
}

// ValidateRaw checks the scraped tree holds its shape before any
// normalization starts. Schedule string contents are not validated here;
// the normalizers degrade on those per field.
func ValidateRaw(departments []RawDepartment) error {
	if len(departments) == 0 {
		return ErrEmptyCatalog
	}
	for i, dept := range departments {
		if strings.TrimSpace(dept.Code) == "" {
			return fmt.Errorf("department at index %d has no code", i)
		}
		for j, course := range dept.Courses {
			if strings.TrimSpace(course.Code) == "" {
				return fmt.Errorf("department %s course at index %d has no code", dept.Code, j)
			}
			for _, semester := range course.Semesters {
				if strings.TrimSpace(semester.Term) == "" {
					return fmt.Errorf("department %s course %s has a semester with no term", dept.Code, course.Code)
				}
			}
		}
	}
	return nil
}
