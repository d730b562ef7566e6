package health

import "time"

// @Enum normal, injured, aged, sick, feral, pregnant, nursing
type Status string

const (
	StatusNormal   Status = "normal"
	StatusInjured  Status = "injured"
	StatusAged     Status = "aged"
	StatusSick     Status = "sick"
	StatusFeral    Status = "feral"
	StatusPregnant Status = "pregnant"
	StatusNursing  Status = "nursing"
)

// @Enum upto_date, incomplete, unknown
type VaccinationStatus string

const (
	VaccinationUpToDate   VaccinationStatus = "upto_date"
	VaccinationIncomplete VaccinationStatus = "incomplete"
	VaccinationUnknown    VaccinationStatus = "unknown"
)

// @Enum flea_tick_prevention, deworming, none
type ParasiteControl string

const (
	ParasiteFleaTick  ParasiteControl = "flea_tick_prevention"
	ParasiteDeworming ParasiteControl = "deworming"
	ParasiteNone      ParasiteControl = "none"
)

// @Enum friendly, shy, aggressive
type Temperament string

const (
	TemperamentFriendly   Temperament = "friendly"
	TemperamentShy        Temperament = "shy"
	TemperamentAggressive Temperament = "aggressive"
)

// Record es una ficha de salud. Un animal puede tener varias (historial).
type Record struct {
	ID       string
	AnimalID string // animals.Animal.ID

	HealthStatus      Status
	VaccinationStatus VaccinationStatus
	ParasiteControl   ParasiteControl
	Temperament       Temperament

	CurrentMedications     string
	KnownMedicalConditions string
	Allergies              string

	AnyAggressiveIncidents bool
	IsNeutered             bool
	IsInjured              bool
	IsRabid                bool

	OtherObservations string

	RecordedBy string
	CreatedAt  time.Time
}
