package dto

type EnqueueRequestDTO struct {
	ProjectID  *int  `json:"project_id,omitempty" example:"3"`
	KeywordIDs []int `json:"keyword_ids,omitempty"`
}

type LiveCheckRequestDTO struct {
	KeywordIDs []int `json:"keyword_ids"`
}

type BatchSummaryDTO struct {
	Processed int `json:"processed" example:"5"`
	Skipped   int `json:"skipped" example:"1"`
	Failed    int `json:"failed" example:"0"`
}
