package models

import "gorm.io/gorm"

// Permission is one row of the role policy table: a row for
// (role, operation) means the role may perform the operation.
type Permission struct {
	gorm.Model
	Role      string `json:"role" gorm:"index;not null"`
	Operation string `json:"operation" gorm:"index;not null"`
}

// Operation names used by the policy table and the permission middleware
const (
	OpQuestionCreate = "questions:create"
	OpQuestionUpdate = "questions:update"
	OpQuestionDelete = "questions:delete"
	OpUserList       = "users:list"
	OpUserCreate     = "users:create"
	OpQuizCreate     = "quizzes:create"
	OpQuizUpdate     = "quizzes:update"
	OpQuizDelete     = "quizzes:delete"
	OpAttemptCreate  = "attempts:create"
	OpAttemptUpdate  = "attempts:update"
	OpAttemptDelete  = "attempts:delete"
	OpDashboardView  = "dashboard:view"
)

// DefaultPolicies returns the (role, operation) pairs seeded at migration.
// Ownership checks on top of these live in the controllers.
func DefaultPolicies() []Permission {
	adminOps := []string{
		OpQuestionCreate, OpQuestionUpdate, OpQuestionDelete,
		OpUserList, OpUserCreate,
		OpQuizCreate, OpQuizUpdate, OpQuizDelete,
		OpAttemptCreate, OpAttemptUpdate, OpAttemptDelete,
		OpDashboardView,
	}
	studentOps := []string{
		OpQuizCreate, OpQuizUpdate, OpQuizDelete,
		OpAttemptCreate, OpAttemptUpdate, OpAttemptDelete,
	}

	var policies []Permission
	for _, op := range adminOps {
		policies = append(policies, Permission{Role: RoleAdmin, Operation: op})
	}
	for _, op := range studentOps {
		policies = append(policies, Permission{Role: RoleStudent, Operation: op})
	}
	return policies
}
