package reservation

import (
	"errors"
	"time"

	"studyrez/internal/domain"
)

// Step is a stage of the booking flow. The flow is linear:
// location -> details -> confirmation.
type Step string

const (
	StepLocation     Step = "location"
	StepDetails      Step = "details"
	StepConfirmation Step = "confirmation"
)

var (
	ErrLocationRequired = errors.New("building and room must be chosen before entering details")
	ErrStartRequired    = errors.New("start time must be set before the end time")
	ErrEndBeforeStart   = errors.New("end time cannot be before the start time")
	ErrDraftIncomplete  = errors.New("draft is missing required fields")
	ErrWrongStep        = errors.New("operation not allowed at this step")
)

// Draft holds one booking flow in progress. It is request/session scoped and
// passed by reference through the steps; there is no shared global state.
type Draft struct {
	step        Step
	building    *domain.Building
	room        *domain.Room
	start       *time.Time
	end         *time.Time
	name        string
	description string
	inviteCode  string
}

func NewDraft() *Draft {
	return &Draft{step: StepLocation}
}

func (d *Draft) Step() Step { return d.step }

// SetLocation picks the building and room; only valid on the first step.
func (d *Draft) SetLocation(building *domain.Building, room *domain.Room) error {
	if d.step != StepLocation {
		return ErrWrongStep
	}
	if building == nil || room == nil {
		return ErrLocationRequired
	}
	d.building = building
	d.room = room
	d.step = StepDetails
	return nil
}

func (d *Draft) SetStart(start time.Time) error {
	if d.step != StepDetails {
		return ErrWrongStep
	}
	d.start = &start
	return nil
}

// SetEnd fails fast when its precondition cannot hold: a start must exist
// and the end may not precede it.
func (d *Draft) SetEnd(end time.Time) error {
	if d.step != StepDetails {
		return ErrWrongStep
	}
	if d.start == nil {
		return ErrStartRequired
	}
	if end.Before(*d.start) {
		return ErrEndBeforeStart
	}
	d.end = &end
	return nil
}

func (d *Draft) SetName(name string) error {
	if d.step != StepDetails {
		return ErrWrongStep
	}
	d.name = name
	return nil
}

func (d *Draft) SetDescription(description string) error {
	if d.step != StepDetails {
		return ErrWrongStep
	}
	d.description = description
	return nil
}

func (d *Draft) SetInviteCode(code string) error {
	if d.step != StepDetails {
		return ErrWrongStep
	}
	d.inviteCode = code
	return nil
}

// Confirm advances to the confirmation step once every required detail is in
// place.
func (d *Draft) Confirm() error {
	if d.step != StepDetails {
		return ErrWrongStep
	}
	if d.start == nil || d.end == nil || d.name == "" {
		return ErrDraftIncomplete
	}
	d.step = StepConfirmation
	return nil
}

// Request turns a confirmed draft into the admission-check request.
func (d *Draft) Request(userID int64) (CreateReservationRequest, error) {
	if d.step != StepConfirmation {
		return CreateReservationRequest{}, ErrWrongStep
	}
	return CreateReservationRequest{
		RoomID:      d.room.ID,
		Name:        d.name,
		Description: d.description,
		InviteCode:  d.inviteCode,
		StartTime:   *d.start,
		EndTime:     *d.end,
		UserID:      userID,
	}, nil
}

// Reset returns the draft to its initial empty state.
func (d *Draft) Reset() {
	*d = Draft{step: StepLocation}
}
