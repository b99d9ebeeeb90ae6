package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

type SectionTypeEnum string

const (
	SectionTypeEnumLecture    SectionTypeEnum = "LECTURE"
	SectionTypeEnumDiscussion SectionTypeEnum = "DISCUSSION"
)

type Department struct {
	ID    int32  `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
}

type Course struct {
	ID           int32       `json:"id"`
	DepartmentID int32       `json:"department_id"`
	Code         string      `json:"code"`
	Title        pgtype.Text `json:"title"`
	Description  pgtype.Text `json:"description"`
}

type DiscussionGroup struct {
	ID       int32  `json:"id"`
	CourseID int32  `json:"course_id"`
	Term     string `json:"term"`
}

type Section struct {
	ID                int32           `json:"id"`
	CourseID          int32           `json:"course_id"`
	DiscussionGroupID pgtype.Int4     `json:"discussion_group_id"`
	ClassNumber       string          `json:"class_number"`
	Term              string          `json:"term"`
	SectionNumber     string          `json:"section_number"`
	Type              SectionTypeEnum `json:"type"`
	IsAsync           bool            `json:"is_async"`
}

type Meeting struct {
	ID        int32       `json:"id"`
	SectionID int32       `json:"section_id"`
	Day       string      `json:"day"`
	StartTime pgtype.Time `json:"start_time"`
	EndTime   pgtype.Time `json:"end_time"`
	Location  pgtype.Text `json:"location"`
}

type Instructor struct {
	ID        int32       `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Title     pgtype.Text `json:"title"`
	Email     pgtype.Text `json:"email"`
	Phone     pgtype.Text `json:"phone"`
}
