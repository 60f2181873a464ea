package types

// Line is one numbered row of a buffer. Number is 1-based.
type Line struct {
	Number int
	Text   string
}
