package models

// Weight units a workout's performance values can be recorded in.
const (
	UnitKg = "kg"
	UnitLb = "lb"
)

const kgToLbFactor = 2.20462

// ToKg converts a weight to the canonical storage unit. A nil unit means the
// value is already in kg.
func ToKg(weight float64, unit *string) float64 {
	if unit != nil && *unit == UnitLb {
		return weight / kgToLbFactor
	}
	return weight
}
