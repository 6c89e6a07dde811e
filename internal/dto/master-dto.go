package dto

type MasterDTO struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Cities   []string `json:"cities"`
	IsActive bool     `json:"is_active"`
}
