package dots

import "errors"

var (
	// ErrOutOfBounds is returned for grid access outside [0,N)x[0,N).
	ErrOutOfBounds = errors.New("dots: position out of bounds")

	// ErrInvalidColor is returned when writing a color outside [0,K) that is not Empty.
	ErrInvalidColor = errors.New("dots: invalid color")

	// ErrInvalidSize is returned when a board size is too small to play on.
	ErrInvalidSize = errors.New("dots: invalid board size")

	// ErrInvalidColors is returned when the number of colors is not positive.
	ErrInvalidColors = errors.New("dots: invalid color count")

	// ErrSaveFailed wraps a score keeper failure after a resolved gesture.
	ErrSaveFailed = errors.New("dots: saving score failed")
)
