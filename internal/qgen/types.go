package qgen

type generateRequest struct {
	Inputs string `json:"inputs"`
}

type generatedText struct {
	GeneratedText string `json:"generated_text"`
}
