package domain

import "fmt"

// Phase is the review stage of the current flashcard
type Phase int

const (
	PhaseAnswering Phase = iota // word shown, awaiting know/don't know
	PhaseChecking               // meaning revealed, awaiting right/wrong
	PhaseAdvancing              // skip/next wording, never written back
)

var phaseNames = map[Phase]string{
	PhaseAnswering: "answering",
	PhaseChecking:  "checking",
	PhaseAdvancing: "advancing",
}

// String returns the phase name
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Action is a user-triggered step of the review loop
type Action string

const (
	ActionIKnow     Action = "iknow"
	ActionIDontKnow Action = "idontknow"
	ActionIAmRight  Action = "iamright"
	ActionIAmWrong  Action = "iamwrong"
)

var actions = map[string]Action{
	"iknow":     ActionIKnow,
	"idontknow": ActionIDontKnow,
	"iamright":  ActionIAmRight,
	"iamwrong":  ActionIAmWrong,
}

// ParseAction maps an action label to an Action
func ParseAction(s string) (Action, error) {
	a, ok := actions[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
	}
	return a, nil
}

// SessionState is the client-held review position
type SessionState struct {
	Phase     Phase
	WordIndex uint64
	// Remember is set by "idontknow". It renders like Checking and
	// only survives as a distinct phase label.
	Remember bool
}

// Tokens are the named client-held strings carrying session state
type Tokens map[string]string

// Token names as stored in cookies
const (
	TokenPhase    = "user_action_type"
	TokenIndex    = "vocab_idx"
	TokenLanguage = "state_choosen_lang"
	TokenNotice   = "_flash"
)

// Phase token labels
const (
	LabelAnswer   = "to_answer"
	LabelCheck    = "to_check"
	LabelRemember = "to_remember"
)
