package backend

// wordRequest is the body of the single-word lookups.
type wordRequest struct {
	Word     string `json:"word"`
	Language string `json:"language"`
}

type synonymsResponse struct {
	Success  bool     `json:"success"`
	Synonyms []string `json:"synonyms"`
}

type definitionResponse struct {
	Success    bool   `json:"success"`
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

type translateWordRequest struct {
	Word            string `json:"word"`
	CurrentLanguage string `json:"current_language"`
	ToLanguage      string `json:"to_language"`
}

type translateWordResponse struct {
	TranslatedWord string `json:"translated_word"`
}

// textRequest is the body of the simplify, explain and summarize streams.
type textRequest struct {
	Text string `json:"text"`
}

type translateTextRequest struct {
	Text            string `json:"text"`
	CurrentLanguage string `json:"current_language"`
	ToLanguage      string `json:"to_language"`
}

type chatRequest struct {
	Message string `json:"message"`
	Context string `json:"context"`
	BookID  string `json:"book_id"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// autoLanguage lets the backend detect the source language.
const autoLanguage = "auto"

// lookupLanguage is the language of synonym and definition lookups.
const lookupLanguage = "English"
