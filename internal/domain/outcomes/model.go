package outcomes

import "time"

// @Enum adoption, transfer, return_to_owner, euthanasia, died, foster
type Outcome string

const (
	OutcomeAdoption      Outcome = "adoption"
	OutcomeTransfer      Outcome = "transfer"
	OutcomeReturnToOwner Outcome = "return_to_owner"
	OutcomeEuthanasia    Outcome = "euthanasia"
	OutcomeDied          Outcome = "died"
	OutcomeFoster        Outcome = "foster"
)

// Prediction: desenlace estimado para un animal. No se calcula acá, lo carga el personal
// (o un proceso externo) con su probabilidad.
type Prediction struct {
	ID          string
	AnimalID    string
	Outcome     Outcome
	Probability float64 // [0, 1]
	PredictedBy string

	CreatedAt time.Time
}
