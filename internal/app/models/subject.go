package models

// Subject represents a course scoped by the (batch, degree, year, semester) tuple.
// BatchID references a batch by id only; the schema enforces no foreign key, so
// a subject can outlive its batch.
type Subject struct {
	ID       int64  `json:"id" db:"id"`
	BatchID  int64  `json:"batchId" db:"batch_id"`
	Degree   string `json:"degree" db:"degree"`
	Year     string `json:"year" db:"year"`
	Semester string `json:"semester" db:"semester"`
	Name     string `json:"name" db:"name"`
}
