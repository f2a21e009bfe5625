package models

// Role is the fixed role a user is created with.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// MaterialType classifies a course material.
type MaterialType string

const (
	MaterialTypeLecture      MaterialType = "lecture"
	MaterialTypeLab          MaterialType = "lab"
	MaterialTypeAnnouncement MaterialType = "announcement"
	MaterialTypeAssignment   MaterialType = "assignment"
	MaterialTypeReading      MaterialType = "reading"
)

// SubmissionStatus tracks a submission through grading.
type SubmissionStatus string

const (
	SubmissionStatusPending   SubmissionStatus = "pending"
	SubmissionStatusSubmitted SubmissionStatus = "submitted"
	SubmissionStatusGraded    SubmissionStatus = "graded"
)
