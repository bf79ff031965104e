package headsup

import (
	"encoding/json"
	"fmt"
)

// Round represents the betting round of a hand
type Round int

// constants for Round, in hand order
const (
	RoundWaiting Round = iota
	RoundPreFlop
	RoundFlop
	RoundTurn
	RoundRiver
	RoundShowdown
	RoundGameOver
)

func (r Round) String() string {
	switch r {
	case RoundWaiting:
		return "waiting"
	case RoundPreFlop:
		return "preflop"
	case RoundFlop:
		return "flop"
	case RoundTurn:
		return "turn"
	case RoundRiver:
		return "river"
	case RoundShowdown:
		return "showdown"
	case RoundGameOver:
		return "game_over"
	}

	return ""
}

// MarshalJSON encodes the round as its name
func (r Round) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes a round from its name
func (r *Round) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	for round := RoundWaiting; round <= RoundGameOver; round++ {
		if round.String() == name {
			*r = round
			return nil
		}
	}

	return fmt.Errorf("unknown round: %s", name)
}
