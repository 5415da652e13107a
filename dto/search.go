package dto

import "frontdesk/models"

// ScoredGuest là kết quả tìm kiếm mờ kèm điểm phù hợp
type ScoredGuest struct {
	Guest models.Guest `json:"guest"`
	Score int          `json:"score"`
}
