package db_models

import "github.com/google/uuid"

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approve"
	SubmissionRejected SubmissionStatus = "rejected"
)

// Submission is a worker's claim of having completed one unit of a task.
// TaskTitle, CreatorEmail and PayableAmount are snapshotted from the task at
// creation time; the approval credit is paid from the snapshot, never from
// the request body.
type Submission struct {
	BaseModel
	TaskID        uuid.UUID        `gorm:"index" json:"taskId"`
	TaskTitle     string           `json:"taskTitle"`
	WorkerEmail   string           `gorm:"index" json:"workerEmail"`
	WorkerName    string           `json:"workerName"`
	CreatorEmail  string           `gorm:"index" json:"creatorEmail"`
	PayableAmount float64          `json:"payableAmount"`
	Detail        string           `json:"submissionDetail"`
	Status        SubmissionStatus `gorm:"index" json:"status"`
}
