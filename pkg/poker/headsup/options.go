package headsup

import "errors"

// Options configures how a heads-up game is played
type Options struct {
	SmallBlind    int
	BigBlind      int
	StartingChips int
}

// DefaultOptions returns the default options for heads-up hold'em
func DefaultOptions() Options {
	return Options{
		SmallBlind:    10,
		BigBlind:      20,
		StartingChips: 1000,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if opts.BigBlind <= opts.SmallBlind {
		return errors.New("big blind must be greater than the small blind")
	}

	if opts.StartingChips < opts.BigBlind {
		return errors.New("starting chips must cover the big blind")
	}

	return nil
}
