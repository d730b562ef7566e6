package assessments

import "time"

// @Enum medical_evaluation, behaviour_analysis
type NextStep string

const (
	NextMedicalEvaluation NextStep = "medical_evaluation"
	NextBehaviourAnalysis NextStep = "behaviour_analysis"
)

// Assessment: evaluación inicial hecha por el personal al ingresar el animal.
type Assessment struct {
	ID         string
	AnimalID   string
	AssessedBy string // users.User.ID
	CageID     string // opcional

	RecommendedNextSteps NextStep
	Notes                string

	CreatedAt time.Time
}
