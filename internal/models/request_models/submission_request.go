package request_models

type CreateSubmissionRequest struct {
	TaskID      string `json:"taskId" binding:"required,uuid4"`
	WorkerEmail string `json:"workerEmail" binding:"required,email"`
	WorkerName  string `json:"workerName"`
	Detail      string `json:"submissionDetail"`
}
