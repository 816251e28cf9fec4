package contentapi

import "encoding/json"

type PageSummaryDTO struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Lang     string `json:"lang"`
}

type BlockDTO struct {
	ID        string          `json:"id,omitempty"`
	Type      string          `json:"type"`
	SortIndex int             `json:"sortIndex"`
	Props     json.RawMessage `json:"props"`
}

type PageDTO struct {
	ID       string     `json:"id"`
	Slug     string     `json:"slug"`
	Title    string     `json:"title"`
	Category string     `json:"category"`
	Lang     string     `json:"lang"`
	Status   string     `json:"status"`
	Blocks   []BlockDTO `json:"blocks"`
}

type ListPagesResponse struct {
	Pages []PageSummaryDTO `json:"pages"`
}

type upsertPageRequest struct {
	Title    string        `json:"title" binding:"required"`
	Category string        `json:"category"`
	Lang     string        `json:"lang"`
	Blocks   []upsertBlock `json:"blocks"`
}

type upsertBlock struct {
	Type  string          `json:"type" binding:"required"`
	Props json.RawMessage `json:"props"`
}
