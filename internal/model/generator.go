package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default) and explicit false.
type GenerateRequest struct {
	Length    int    `json:"length"`
	Uppercase *bool  `json:"uppercase"`
	Lowercase *bool  `json:"lowercase"`
	Numbers   *bool  `json:"numbers"`
	Symbols   *bool  `json:"symbols"`
	Readable  *bool  `json:"readable"`
	Locale    string `json:"locale,omitempty"`
}

// StrengthResponse describes how strong a password is. Text is the label
// translated into the request locale, when one was given.
type StrengthResponse struct {
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
	Label    string `json:"label"`
	Text     string `json:"text,omitempty"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Strength StrengthResponse `json:"strength"`
}

// StrengthRequest asks for the score of an existing password.
type StrengthRequest struct {
	Password string `json:"password"`
	Locale   string `json:"locale,omitempty"`
}
