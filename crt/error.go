package crt

import "fmt"

// NotFound - Custom error to inform that no entry was found
type NotFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E NotFound) Error() string {
	if E.msg == "" {
		return "entry not found"
	}
	return E.msg
}

// DuplicateKey - Custom error to inform that a valid entry with the same key already exists
type DuplicateKey struct {
	msg string
}

// NewDuplicateKey - Returns a DuplicateKey error naming the offending key
func NewDuplicateKey(key fmt.Stringer) DuplicateKey {
	return DuplicateKey{msg: fmt.Sprintf("duplicate key %s", key)}
}

// Error - Used to notify that the key is already in the table
func (E DuplicateKey) Error() string {
	if E.msg == "" {
		return "duplicate key"
	}
	return E.msg
}

// Is - Matches any DuplicateKey regardless of message
func (E DuplicateKey) Is(target error) bool {
	_, ok := target.(DuplicateKey)
	return ok
}

// TableFull - Custom error to inform that the table is full and can't take more entries
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// InvalidKeyType - Custom error to inform that a key is neither an integer nor a string
type InvalidKeyType struct {
	msg string
}

// NewInvalidKeyType - Returns an InvalidKeyType error describing the rejected value
func NewInvalidKeyType(value any) InvalidKeyType {
	return InvalidKeyType{msg: fmt.Sprintf("invalid key type %T: strings or integers only", value)}
}

// Error - Used to notify that the key can't be hashed
func (I InvalidKeyType) Error() string {
	if I.msg == "" {
		return "invalid key type: strings or integers only"
	}
	return I.msg
}

// Is - Matches any InvalidKeyType regardless of message
func (I InvalidKeyType) Is(target error) bool {
	_, ok := target.(InvalidKeyType)
	return ok
}

// InvalidComparison - Custom error to inform that an entry was compared with something that is not an entry
type InvalidComparison struct {
	msg string
}

// NewInvalidComparison - Returns an InvalidComparison error describing the value compared against
func NewInvalidComparison(value any) InvalidComparison {
	return InvalidComparison{msg: fmt.Sprintf("invalid comparison with %T", value)}
}

// Error - Used to notify an invalid comparison
func (I InvalidComparison) Error() string {
	if I.msg == "" {
		return "invalid comparison"
	}
	return I.msg
}

// Is - Matches any InvalidComparison regardless of message
func (I InvalidComparison) Is(target error) bool {
	_, ok := target.(InvalidComparison)
	return ok
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that the probing algorithm never covered the table
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}
