package models

// Material represents an uploaded file attached to a subject.
// FilePath is the storage key inside the uploads directory; FileName keeps
// the original upload filename for display and download headers.
type Material struct {
	ID        int64  `json:"id" db:"id"`
	SubjectID int64  `json:"subjectId" db:"subject_id"`
	Title     string `json:"title" db:"title"`
	FilePath  string `json:"filePath" db:"file_path"`
	FileName  string `json:"fileName" db:"file_name"`
}
