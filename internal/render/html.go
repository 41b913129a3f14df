package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"vocabflash/internal/domain"
)

//go:embed templates/review.html.tmpl
var templateFS embed.FS

type button struct {
	Action domain.Action
	Key    string
	Label  string
}

type langLink struct {
	Code   string
	Name   string
	Active bool
}

type page struct {
	Lang           string
	Title          string
	Notice         *domain.Notice
	Entry          *domain.VocabularyEntry
	ShowMeaning    bool
	Position       string
	AudioURL       string
	PronounceLabel string
	FinishedLabel  string
	Buttons        []button
	Languages      []langLink
}

// HTML renders review views as a full HTML page
type HTML struct {
	tmpl *template.Template
}

// NewHTML parses the embedded review template
func NewHTML() (*HTML, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/review.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse review template: %w", err)
	}
	return &HTML{tmpl: tmpl}, nil
}

// Render writes the page for view
func (h *HTML) Render(w io.Writer, view domain.ReviewView) error {
	p := page{
		Lang:           view.Language.Code(),
		Title:          text(view.Language, keySiteTitle),
		Notice:         view.Notice,
		Entry:          view.Entry,
		ShowMeaning:    view.Phase != domain.PhaseAnswering,
		PronounceLabel: text(view.Language, keyPronounce),
		FinishedLabel:  text(view.Language, keyFinished),
		Buttons:        buttonsFor(view.Phase, view.Language),
		Languages:      languageLinks(view.Language),
	}

	if view.Entry != nil {
		p.AudioURL = "/pronunciation?vocab=" + url.QueryEscape(view.Entry.Headword)
		p.Position = fmt.Sprintf(text(view.Language, keyPosition), displayPosition(view.WordIndex), view.TotalPages)
	}

	return h.tmpl.Execute(w, p)
}

// buttonsFor returns the two action buttons for a phase
func buttonsFor(phase domain.Phase, lang domain.Language) []button {
	switch phase {
	case domain.PhaseAnswering:
		return []button{
			{Action: domain.ActionIKnow, Key: "X", Label: text(lang, keyKnow)},
			{Action: domain.ActionIDontKnow, Key: "C", Label: text(lang, keyDontKnow)},
		}
	case domain.PhaseChecking:
		return []button{
			{Action: domain.ActionIAmRight, Key: "X", Label: text(lang, keyRight)},
			{Action: domain.ActionIAmWrong, Key: "C", Label: text(lang, keyWrong)},
		}
	default:
		return []button{
			{Action: domain.ActionIAmRight, Key: "X", Label: text(lang, keySkip)},
			{Action: domain.ActionIAmWrong, Key: "C", Label: text(lang, keyNext)},
		}
	}
}

// languageLinks lists every language in its own name
func languageLinks(current domain.Language) []langLink {
	var links []langLink
	for _, lang := range []domain.Language{domain.English, domain.SimplifiedChinese, domain.Japanese} {
		links = append(links, langLink{
			Code:   lang.Code(),
			Name:   text(lang, keyLangName),
			Active: lang == current,
		})
	}
	return links
}

// displayPosition mirrors the cursor clamping of index 0 to the first word
func displayPosition(index uint64) uint64 {
	if index < 1 {
		return 1
	}
	return index
}
