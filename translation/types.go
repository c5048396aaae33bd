package translation

// TranslateRequest is the input of Adapter.Execute. Empty language fields
// fall back to the configured pair.
type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang,omitempty"`
	TargetLang string `json:"target_lang,omitempty"`
}

// Translation is the first translation of a reply.
type Translation struct {
	Text                   string `json:"text"`
	DetectedSourceLanguage string `json:"detected_source_language"`
}

// translateResponse is the reply envelope. Every listed translation must
// carry both fields; an explicit empty list is EMPTY_RESPONSE.
type translateResponse struct {
	Translations []translationItem `json:"translations" validate:"required,dive"`
}

type translationItem struct {
	Text                   *string `json:"text" validate:"required"`
	DetectedSourceLanguage *string `json:"detected_source_language" validate:"required"`
}
