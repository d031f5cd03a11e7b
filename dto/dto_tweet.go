package dto

// ===== Request =====
type TweetForm struct {
	User    string `form:"user"    json:"user"    example:"Klopp"`
	Content string `form:"content" json:"content" example:"Hello there, world!"`
}

// ===== Error Response =====
type ErrorResponse struct {
	Error string `json:"error" example:"not implemented"`
}
