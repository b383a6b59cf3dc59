package wordfilter

import "errors"

// Validation messages. Each is shown to the user verbatim.
const (
	MsgNoWords           = "Please enter words or upload a CSV file first."
	MsgLetterRequired    = "Please enter a letter."
	MsgLetterInvalid     = "Letter must be a single alphabet character."
	MsgPositionsRequired = "Please enter at least one position."
	MsgPositionsInvalid  = "All positions must be positive numbers separated by commas."
	MsgTargetPosition    = "Please enter a valid positive number for the chained search target position in the primary word."
	MsgSecondaryLength   = "Please enter a valid positive number for the chained search word length."
	MsgSecondaryMatch    = "Please enter a valid positive number for the target letter position in the secondary word."
	MsgNoLinkLetters     = "No primary words available at that position."
	MsgInvalidEncoding   = "Error reading file. Please ensure it is a valid CSV."
)

var (
	ErrNoWords           = errors.New(MsgNoWords)
	ErrLetterRequired    = errors.New(MsgLetterRequired)
	ErrLetterInvalid     = errors.New(MsgLetterInvalid)
	ErrPositionsRequired = errors.New(MsgPositionsRequired)
	ErrPositionsInvalid  = errors.New(MsgPositionsInvalid)
	ErrTargetPosition    = errors.New(MsgTargetPosition)
	ErrSecondaryLength   = errors.New(MsgSecondaryLength)
	ErrSecondaryMatch    = errors.New(MsgSecondaryMatch)
	ErrNoLinkLetters     = errors.New(MsgNoLinkLetters)
	ErrInvalidEncoding   = errors.New(MsgInvalidEncoding)
)
