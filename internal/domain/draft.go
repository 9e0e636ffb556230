package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// DraftState is the position of a form draft in the submit state machine
type DraftState string

const (
	DraftDrafting   DraftState = "drafting"
	DraftValidating DraftState = "validating"
	DraftInvalid    DraftState = "invalid"
	DraftValid      DraftState = "valid"
	DraftConfirming DraftState = "confirming"
	DraftRejected   DraftState = "rejected"
	DraftConfirmed  DraftState = "confirmed"
	DraftSaved      DraftState = "saved"
)

// ErrInvalidTransition is returned when a draft is moved along an edge that does not exist
var ErrInvalidTransition = errors.New("domain: invalid draft state transition")

var draftTransitions = map[DraftState][]DraftState{
	DraftDrafting:   {DraftValidating},
	DraftValidating: {DraftInvalid, DraftValid},
	DraftInvalid:    {DraftDrafting},
	DraftValid:      {DraftConfirming},
	DraftConfirming: {DraftRejected, DraftConfirmed},
	DraftRejected:   {DraftDrafting},
	DraftConfirmed:  {DraftSaved},
}

// Draft is an in-progress, unpersisted booking: raw form strings plus selections
type Draft struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	EventDate string `json:"eventDate"`
	Venue     string `json:"venue"`
	Guests    string `json:"guests"`
	Style     string `json:"style"`
	Selection
	State DraftState `json:"state"`
	// OriginID is set only in atomic edit mode: the booking a submit will replace
	OriginID string `json:"originId,omitempty"`
}

// NewDraftFromBooking opens a stored booking as a Drafting draft
func NewDraftFromBooking(b *Booking, originID string) *Draft {
	guests := ""
	if b.Guests > 0 {
		guests = strconv.Itoa(b.Guests)
	}
	return &Draft{
		Name:      b.Name,
		Email:     b.Email,
		Contact:   b.Contact,
		EventDate: b.EventDate,
		Venue:     b.Venue,
		Guests:    guests,
		Style:     b.Style,
		Selection: b.Selection.Normalized(),
		State:     DraftDrafting,
		OriginID:  originID,
	}
}

// Transition moves the draft to the next state if the edge exists
func (d *Draft) Transition(to DraftState) error {
	from := d.State
	if from == "" {
		from = DraftDrafting
	}
	for _, next := range draftTransitions[from] {
		if next == to {
			d.State = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// Clone returns a deep copy so callers can hand back an unchanged draft
func (d *Draft) Clone() *Draft {
	c := *d
	c.Selection = Selection{
		MainDishes: append([]string(nil), d.MainDishes...),
		SideDishes: append([]string(nil), d.SideDishes...),
		Desserts:   append([]string(nil), d.Desserts...),
		Drinks:     append([]string(nil), d.Drinks...),
	}
	return &c
}
