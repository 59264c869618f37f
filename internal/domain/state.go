package domain

import "wortschatz/internal/quiz"

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle              UserState = "idle"
	StatePickingSize       UserState = "picking_size"
	StateWaitingCustomSize UserState = "waiting_custom_size"
	StateInQuiz            UserState = "in_quiz"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State     UserState
	Direction quiz.Direction // chosen direction, set once size picking starts
	Session   *quiz.Session  // live quiz session, set while StateInQuiz
}
