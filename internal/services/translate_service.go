package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/example/winehouse/internal/i18n"
)

// TranslateService fills the ja/en/it fields of admin forms from Chinese
// source text via the MyMemory public API. Every call is best effort: on
// any network or parsing failure the source text is returned unchanged so
// a save is never blocked.
type TranslateService struct {
	baseURL string
	client  *http.Client
}

// NewTranslateService creates a new TranslateService.
func NewTranslateService(baseURL string) *TranslateService {
	return &TranslateService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

// Translate returns text translated from Chinese into target, or the
// source text when the call fails.
func (s *TranslateService) Translate(text string, target i18n.Locale) string {
	if text == "" {
		return ""
	}

	endpoint := fmt.Sprintf("%s/get?q=%s&langpair=zh|%s", s.baseURL, url.QueryEscape(text), target)

	resp, err := s.client.Get(endpoint)
	if err != nil {
		log.Warn().Err(err).Str("target", string(target)).Msg("translation request failed")
		return text
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("target", string(target)).Msg("translation returned unexpected status")
		return text
	}

	var parsed myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Warn().Err(err).Msg("translation response not parseable")
		return text
	}

	if parsed.ResponseData.TranslatedText == "" {
		return text
	}
	return parsed.ResponseData.TranslatedText
}

// Fill expands a Chinese value into all locales. The Chinese value is
// carried through as-is; the other locales are machine translated.
func (s *TranslateService) Fill(source string) i18n.Text {
	return i18n.Text{
		Zh: source,
		Ja: s.Translate(source, i18n.Ja),
		En: s.Translate(source, i18n.En),
		It: s.Translate(source, i18n.It),
	}
}

// FillAll translates a batch of named Chinese fields, one i18n.Text per
// input field.
func (s *TranslateService) FillAll(fields map[string]string) map[string]i18n.Text {
	out := make(map[string]i18n.Text, len(fields))
	for name, source := range fields {
		out[name] = s.Fill(source)
	}
	return out
}
