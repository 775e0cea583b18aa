// Package session models one room-scan flow as an explicit state machine.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vibear-app/vibear/internal/models"
)

// State is where a scan session currently is
type State string

const (
	Capturing  State = "capturing"
	Scanned    State = "scanned"
	Analyzing  State = "analyzing"
	Suggesting State = "suggesting"
	Placing    State = "placing"
)

// ErrInvalidTransition is returned when an event is not allowed in the current state
var ErrInvalidTransition = errors.New("invalid session transition")

// Session holds a scan's photo, its analysis results and the item being placed
type Session struct {
	ID          string                 `json:"id"`
	State       State                  `json:"state"`
	Photo       string                 `json:"photo,omitempty"`
	Context     string                 `json:"context,omitempty"`
	Query       string                 `json:"query,omitempty"`
	Analysis    *models.RoomAnalysis   `json:"analysis,omitempty"`
	Keywords    []string               `json:"keywords,omitempty"`
	Furniture   []models.FurnitureItem `json:"furniture,omitempty"`
	Reply       string                 `json:"reply,omitempty"`
	Placed      *models.FurnitureItem  `json:"placed,omitempty"`
	Explanation string                 `json:"explanation,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// New starts a session in the capturing state
func New() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.New().String(),
		State:     Capturing,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Session) transition(event string, to State, from ...State) error {
	for _, f := range from {
		if s.State == f {
			s.State = to
			s.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, s.State)
}

// Scan stores a captured photo. Scanning again before analysis replaces it.
func (s *Session) Scan(photo, userContext string) error {
	if err := s.transition("scan", Scanned, Capturing, Scanned); err != nil {
		return err
	}
	s.Photo = photo
	s.Context = userContext
	return nil
}

// BeginAnalysis marks an analysis as running. It is also how a new query is asked after suggestions.
func (s *Session) BeginAnalysis(query string) error {
	if err := s.transition("analyze", Analyzing, Scanned, Suggesting, Placing); err != nil {
		return err
	}
	s.Query = query
	return nil
}

// Suggest records a finished analysis and its furniture suggestions
func (s *Session) Suggest(a models.RoomAnalysis, keywords []string, items []models.FurnitureItem, reply string) error {
	if err := s.transition("suggest", Suggesting, Analyzing); err != nil {
		return err
	}
	s.Analysis = &a
	s.Keywords = keywords
	s.Furniture = items
	s.Reply = reply
	s.Placed = nil
	s.Explanation = ""
	return nil
}

// FailAnalysis returns to the scanned photo so the user can try again
func (s *Session) FailAnalysis() error {
	return s.transition("fail", Scanned, Analyzing)
}

// Place selects an item for AR placement
func (s *Session) Place(item models.FurnitureItem, explanation string) error {
	if err := s.transition("place", Placing, Suggesting, Placing); err != nil {
		return err
	}
	s.Placed = &item
	s.Explanation = explanation
	return nil
}

// Back leaves placement and shows the suggestions again
func (s *Session) Back() error {
	if err := s.transition("back", Suggesting, Placing); err != nil {
		return err
	}
	s.Placed = nil
	s.Explanation = ""
	return nil
}

// Retake discards the photo and every result. Allowed from any state.
func (s *Session) Retake() {
	s.State = Capturing
	s.Photo = ""
	s.Context = ""
	s.Query = ""
	s.Analysis = nil
	s.Keywords = nil
	s.Furniture = nil
	s.Reply = ""
	s.Placed = nil
	s.Explanation = ""
	s.UpdatedAt = time.Now().UTC()
}
