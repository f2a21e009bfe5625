package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

func intPtr(v int) *int { return &v }

func TestStructAcceptsValidPayloads(t *testing.T) {
	payloads := []interface{}{
		&dto.CreateUserRequest{Name: "Ada", Email: "ada@example.com", PasswordHash: "x", Role: "teacher"},
		&dto.CreateCourseRequest{Code: "CS101", Title: "Intro", TeacherID: uuid.New()},
		&dto.CreateEnrollmentRequest{StudentID: uuid.New(), CourseID: uuid.New()},
		&dto.CreateMaterialRequest{CourseID: uuid.New(), Type: "reading", Title: "Ch. 1"},
		&dto.CreateMaterialFileRequest{MaterialID: uuid.New(), Name: "a.pdf", URL: "https://example.com/a.pdf"},
		&dto.CreateAssignmentRequest{MaterialID: uuid.New(), DueDate: time.Now(), MaxGrade: intPtr(0)},
		&dto.CreateSubmissionRequest{AssignmentID: uuid.New(), StudentID: uuid.New(), ContentURL: "http://example.com/s"},
	}
	for _, p := range payloads {
		if err := Struct(p); err != nil {
			t.Fatalf("%T: unexpected error %v", p, err)
		}
	}
}

func TestStructRejectsFieldConstraints(t *testing.T) {
	cases := []struct {
		name    string
		payload interface{}
		field   string
		rule    string
	}{
		{
			name:    "bad email",
			payload: &dto.CreateUserRequest{Name: "Ada", Email: "not-an-email", PasswordHash: "x", Role: "student"},
			field:   "email", rule: "email",
		},
		{
			name:    "bad role",
			payload: &dto.CreateUserRequest{Name: "Ada", Email: "ada@example.com", PasswordHash: "x", Role: "admin"},
			field:   "role", rule: "oneof",
		},
		{
			name:    "bad material type",
			payload: &dto.CreateMaterialRequest{CourseID: uuid.New(), Type: "video", Title: "t"},
			field:   "type", rule: "oneof",
		},
		{
			name:    "relative file url",
			payload: &dto.CreateMaterialFileRequest{MaterialID: uuid.New(), Name: "a", URL: "/files/a.pdf"},
			field:   "url", rule: "http_url",
		},
		{
			name:    "negative max grade",
			payload: &dto.CreateAssignmentRequest{MaterialID: uuid.New(), DueDate: time.Now(), MaxGrade: intPtr(-1)},
			field:   "max_grade", rule: "min",
		},
		{
			name:    "missing max grade",
			payload: &dto.CreateAssignmentRequest{MaterialID: uuid.New(), DueDate: time.Now()},
			field:   "max_grade", rule: "required",
		},
		{
			name:    "bad content url",
			payload: &dto.CreateSubmissionRequest{AssignmentID: uuid.New(), StudentID: uuid.New(), ContentURL: "not a url"},
			field:   "content_url", rule: "http_url",
		},
		{
			name:    "nil teacher id",
			payload: &dto.CreateCourseRequest{Code: "c", Title: "t"},
			field:   "teacher_id", rule: "required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(tc.payload)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("expected validation failure, got %v", err)
			}
			var verr *apperrors.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if len(verr.Fields) != 1 {
				t.Fatalf("expected one field error, got %+v", verr.Fields)
			}
			if verr.Fields[0].Field != tc.field || verr.Fields[0].Rule != tc.rule {
				t.Fatalf("expected %s/%s, got %+v", tc.field, tc.rule, verr.Fields[0])
			}
		})
	}
}

func TestStructOptionalFieldsMayBeNil(t *testing.T) {
	p := &dto.CreateMaterialFileRequest{MaterialID: uuid.New(), Name: "slides", URL: "https://example.com/s.pdf"}
	if p.FileType != nil || p.FileSize != nil {
		t.Fatalf("precondition: optional fields nil")
	}
	if err := Struct(p); err != nil {
		t.Fatalf("optional fields must not be required: %v", err)
	}
}
