package subject

type CreateSubjectRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Code    string `json:"code" binding:"max=30"`
	ClassID string `json:"class_id" binding:"omitempty,uuid"`
}

type UpdateSubjectRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Code    string `json:"code" binding:"max=30"`
	ClassID string `json:"class_id" binding:"omitempty,uuid"`
}

type SubjectResponse struct {
	ID       string `json:"id"`
	SchoolID string `json:"school_id"`
	ClassID  string `json:"class_id,omitempty"`
	Name     string `json:"name"`
	Code     string `json:"code"`
}
