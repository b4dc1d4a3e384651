package stats

// BreedSelection is a breed name that has been validated against a Dataset.
// The zero value is not a valid selection.
type BreedSelection struct {
	breed string
}

// Breed returns the normalized, upper-case breed name.
func (s BreedSelection) Breed() string { return s.breed }

func (s BreedSelection) String() string { return s.breed }

// IsZero reports whether the selection was never validated.
func (s BreedSelection) IsZero() bool { return s.breed == "" }

// ValidateBreed matches raw user input against the breeds of ds, ignoring
// case and surrounding whitespace. No partial matching is done.
func ValidateBreed(input string, ds *Dataset) (BreedSelection, error) {
	breed := NormalizeBreed(input)
	if breed == "" || !ds.HasBreed(breed) {
		return BreedSelection{}, &UnknownBreedError{Input: input}
	}
	return BreedSelection{breed: breed}, nil
}
