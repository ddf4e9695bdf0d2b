package dto

import "pms/response"

// PaginatedResponse wraps list payloads that carry pagination info.
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

// StatusUpdateRequest changes a reservation's lifecycle status.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}
