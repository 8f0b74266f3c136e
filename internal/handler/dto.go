package handler

import "github.com/msomdec/searchproxy/internal/domain"

// UserDTO is the JSON representation of a user. The password hash never
// leaves the server.
type UserDTO struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Disabled bool   `json:"disabled"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Disabled: u.Disabled,
	}
}

// TokenDTO is the JSON representation of an issued bearer token.
type TokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SearchResultDTO is the JSON representation of a single search result.
type SearchResultDTO struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// SearchResultsDTO wraps the ordered result list.
type SearchResultsDTO struct {
	ResultList []SearchResultDTO `json:"result_list"`
}

func toSearchResultsDTO(results []domain.SearchResult) SearchResultsDTO {
	dtos := make([]SearchResultDTO, len(results))
	for i, r := range results {
		dtos[i] = SearchResultDTO{Title: r.Title, URL: r.URL}
	}
	return SearchResultsDTO{ResultList: dtos}
}
