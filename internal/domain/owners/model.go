package owners

import "time"

// IntakeReason: por qué el dueño anterior entregó al animal.
// @Enum abandoned, owners_moving_away, hypoallergens, unable_to_care_for
type IntakeReason string

const (
	ReasonAbandoned       IntakeReason = "abandoned"
	ReasonOwnersMoving    IntakeReason = "owners_moving_away"
	ReasonHypoallergens   IntakeReason = "hypoallergens"
	ReasonUnableToCareFor IntakeReason = "unable_to_care_for"
)

// PreviousOwner: datos del dueño anterior de un animal.
type PreviousOwner struct {
	ID       string
	AnimalID string

	PreviousOwnerKnown bool
	Name               string

	ReasonForIntake   IntakeReason
	LengthOfStayYears float64 // tiempo que vivió con el dueño anterior

	PreviousVeterinaryClinic string

	CreatedAt time.Time
}
