package service

import (
	"strconv"

	"vocabflash/internal/domain"
)

// transition is the effect of one action on the session state.
// Actions behave the same from every phase.
type transition struct {
	to       domain.Phase
	advance  uint64
	remember bool
}

var transitions = map[domain.Action]transition{
	domain.ActionIKnow:     {to: domain.PhaseChecking},
	domain.ActionIDontKnow: {to: domain.PhaseChecking, remember: true},
	domain.ActionIAmRight:  {to: domain.PhaseAnswering, advance: 1},
	domain.ActionIAmWrong:  {to: domain.PhaseAnswering, advance: 1},
}

// SessionService maps client tokens to review state and back.
// It holds no state of its own.
type SessionService struct{}

// NewSessionService creates a new session service
func NewSessionService() *SessionService {
	return &SessionService{}
}

// Derive reconstructs the session state from tokens.
// Malformed index tokens count as 0; an absent phase token means Answering.
func (s *SessionService) Derive(tokens domain.Tokens) domain.SessionState {
	state := domain.SessionState{
		Phase:     domain.PhaseAnswering,
		WordIndex: parseIndex(tokens[domain.TokenIndex]),
	}

	switch label := tokens[domain.TokenPhase]; label {
	case "", domain.LabelAnswer:
	case domain.LabelCheck:
		state.Phase = domain.PhaseChecking
	case domain.LabelRemember:
		state.Phase = domain.PhaseChecking
		state.Remember = true
	default:
		state.Phase = domain.PhaseAdvancing
	}

	return state
}

// Apply computes the state that follows action
func (s *SessionService) Apply(tokens domain.Tokens, action string) (domain.SessionState, error) {
	a, err := domain.ParseAction(action)
	if err != nil {
		return domain.SessionState{}, err
	}

	state := s.Derive(tokens)
	tr := transitions[a]

	state.Phase = tr.to
	state.Remember = tr.remember
	state.WordIndex += tr.advance

	return state, nil
}

// Encode serializes the state into tokens. Advancing is written as Answering.
func (s *SessionService) Encode(state domain.SessionState) domain.Tokens {
	label := domain.LabelAnswer
	if state.Phase == domain.PhaseChecking {
		label = domain.LabelCheck
		if state.Remember {
			label = domain.LabelRemember
		}
	}

	return domain.Tokens{
		domain.TokenPhase: label,
		domain.TokenIndex: strconv.FormatUint(state.WordIndex, 10),
	}
}

func parseIndex(raw string) uint64 {
	idx, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return idx
}
