package store

import (
	"fmt"

	"gorm.io/gorm"
)

// The cascade helpers remove dependents with plain statements so the result
// does not depend on the database enforcing foreign keys.

func exec(tx *gorm.DB, stmts []string, args ...any) error {
	for _, stmt := range stmts {
		if err := tx.Exec(stmt, args...).Error; err != nil {
			return err
		}
	}
	return nil
}

// deleteEmployeeDependents removes goals, feedback and appraisals owned by
// the employee profiles selected by profileIDs, a subquery or a single "?".
func deleteEmployeeDependents(tx *gorm.DB, profileIDs string, args ...any) error {
	stmts := []string{
		fmt.Sprintf("UPDATE %s SET appraisal_id = NULL WHERE appraisal_id IN (SELECT id FROM %s WHERE employee_id IN (%s))",
			TableGoals, TableAppraisals, profileIDs),
		fmt.Sprintf("DELETE FROM %s WHERE employee_id IN (%s)", TableGoals, profileIDs),
		fmt.Sprintf("DELETE FROM %s WHERE employee_id IN (%s)", TableFeedbacks, profileIDs),
		fmt.Sprintf("DELETE FROM %s WHERE employee_id IN (%s)", TableAppraisals, profileIDs),
	}
	return exec(tx, stmts, args...)
}

// CascadeUser deletes the user's employee profiles with everything they own,
// and the feedback the user wrote as reviewer.
func CascadeUser(tx *gorm.DB, id int64) error {
	profiles := fmt.Sprintf("SELECT id FROM %s WHERE user_id = ?", TableEmployeeProfiles)
	if err := deleteEmployeeDependents(tx, profiles, id); err != nil {
		return err
	}
	return exec(tx, []string{
		fmt.Sprintf("DELETE FROM %s WHERE reviewer_id = ?", TableFeedbacks),
		fmt.Sprintf("DELETE FROM %s WHERE user_id = ?", TableEmployeeProfiles),
	}, id)
}

func CascadeEmployeeProfile(tx *gorm.DB, id int64) error {
	return deleteEmployeeDependents(tx, "?", id)
}

// CascadeReviewCycle deletes the cycle's appraisals. Goals linked to them survive unlinked.
func CascadeReviewCycle(tx *gorm.DB, id int64) error {
	return exec(tx, []string{
		fmt.Sprintf("UPDATE %s SET appraisal_id = NULL WHERE appraisal_id IN (SELECT id FROM %s WHERE review_cycle_id = ?)",
			TableGoals, TableAppraisals),
		fmt.Sprintf("DELETE FROM %s WHERE review_cycle_id = ?", TableAppraisals),
	}, id)
}

func CascadeAppraisal(tx *gorm.DB, id int64) error {
	return exec(tx, []string{
		fmt.Sprintf("UPDATE %s SET appraisal_id = NULL WHERE appraisal_id = ?", TableGoals),
	}, id)
}
