package models

// HalaqahGroup is a study circle with its supervising examiner.
type HalaqahGroup struct {
	ID           string  `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	ExaminerID   *string `db:"examiner_id" json:"examiner_id,omitempty"`
	ExaminerName *string `db:"examiner_name" json:"examiner_name,omitempty"`
}
