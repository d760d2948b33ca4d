package salary

// Currency codes used by the supported job boards for Russian roubles.
const (
	CurrencySuperJob   = "rub"
	CurrencyHeadHunter = "RUR"
)

// Bound is one side of a salary fork. The zero value means no bound was supplied.
type Bound struct {
	Value int
	Valid bool
}

// Some returns a present bound.
func Some(v int) Bound {
	return Bound{Value: v, Valid: true}
}

// None returns an absent bound.
func None() Bound {
	return Bound{}
}

// NonZero treats 0 as "not supplied", the convention SuperJob uses for payment fields.
func NonZero(v int) Bound {
	if v == 0 {
		return None()
	}
	return Some(v)
}

// Nullable converts a JSON nullable integer, the convention HeadHunter uses.
// A genuine 0 stays a present bound.
func Nullable(v *int) Bound {
	if v == nil {
		return None()
	}
	return Some(*v)
}

// Listing is the salary part of a vacancy after provider sentinels are removed.
type Listing struct {
	Currency string
	From     Bound
	To       Bound
}

// Estimator maps a listing to a single salary figure. The bool reports whether an
// estimate could be derived.
type Estimator func(l *Listing) (int, bool)

// Predict derives a single figure from a salary fork.
//
//	both bounds  -> (from + to) / 2
//	from only    -> from * 1.2
//	to only      -> to * 0.8
//
// All results are floored.
func Predict(from, to Bound) (int, bool) {
	switch {
	case from.Valid && to.Valid:
		return floorDiv(from.Value+to.Value, 2), true
	case from.Valid:
		return floorDiv(from.Value*6, 5), true
	case to.Valid:
		return floorDiv(to.Value*4, 5), true
	default:
		return 0, false
	}
}

// ForCurrency returns an Estimator that only accepts listings in the given currency.
func ForCurrency(currency string) Estimator {
	return func(l *Listing) (int, bool) {
		if l == nil || l.Currency != currency {
			return 0, false
		}
		return Predict(l.From, l.To)
	}
}

// floorDiv rounds towards negative infinity, unlike Go's / operator.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
