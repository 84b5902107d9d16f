package dto

// SearchArtistsRequest - параметры поиска артистов (query string)
type SearchArtistsRequest struct {
	Query     string   `form:"q"`
	Service   string   `form:"service"`
	Location  string   `form:"location"`
	MinBudget *float64 `form:"minBudget"`
	MaxBudget *float64 `form:"maxBudget"`
	Limit     *int     `form:"limit"`
	Offset    *int     `form:"offset"`
}

// ArtistSearchItem - денормализованная карточка артиста в выдаче поиска
type ArtistSearchItem struct {
	ID        string   `json:"id"`
	Name      *string  `json:"name"`
	Role      string   `json:"role"`
	Service   *string  `json:"service"`
	BudgetMin *float64 `json:"budget_min"`
	BudgetMax *float64 `json:"budget_max"`
	Rating    *float64 `json:"rating"`
	Reviews   int      `json:"reviews"`
	Location  *string  `json:"location"`
	Img       *string  `json:"img"`
	Bio       *string  `json:"bio"`
}

// SearchArtistsResponse - ответ поиска
type SearchArtistsResponse struct {
	Success bool               `json:"success"`
	Items   []ArtistSearchItem `json:"items"`
	Count   int                `json:"count"`
}
