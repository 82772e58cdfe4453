// Package models provides domain models for the trading journal.
package models

import (
	"time"
)

// Direction represents the side of a trade.
type Direction string

const (
	Buy  Direction = "Buy"
	Sell Direction = "Sell"
)

// Outcome represents the result of a closed trade.
type Outcome string

const (
	Win       Outcome = "Win"
	Loss      Outcome = "Loss"
	BreakEven Outcome = "BreakEven"
)

// Session represents a time-of-day trading window.
type Session string

const (
	Asian  Session = "Asian"
	London Session = "London"
	NY     Session = "NY"
	PreNY  Session = "Pre-NY"
	PostNY Session = "Post-NY"
)

// Sessions lists every session in display order.
var Sessions = []Session{Asian, London, NY, PreNY, PostNY}

// Emotion represents the trader's emotional state during a trade.
type Emotion string

const (
	Calm          Emotion = "Calm"
	Fear          Emotion = "Fear"
	Greed         Emotion = "Greed"
	Impulsive     Emotion = "Impulsive"
	Overconfident Emotion = "Overconfident"
	Disciplined   Emotion = "Disciplined"
)

// Emotions lists every emotion in display order.
var Emotions = []Emotion{Calm, Fear, Greed, Impulsive, Overconfident, Disciplined}

// Trade represents a single closed trade observation. Trades are immutable
// once recorded; analytics never modify them.
type Trade struct {
	ID           string
	AccountID    string // may be orphaned if the account was removed
	Date         time.Time
	Symbol       string
	Direction    Direction
	EntryPrice   float64
	StopLoss     float64
	TakeProfit   float64 // zero when no target was set
	ExitPrice    float64
	Outcome      Outcome
	RMultiple    float64 // realized risk-adjusted return, signed
	RiskPercent  float64 // percent of account balance risked
	RiskAmount   float64 // planned risk in currency, fixed at entry
	RewardAmount float64 // realized reward in currency
	Session      Session
	Setup        string // free-form categorical tag
	Emotion      Emotion
	Discipline   int // 1-5
	Notes        string
	Screenshot   string
}

// Account represents a trading account.
type Account struct {
	ID              string
	Name            string
	StartingBalance float64
	CreatedAt       time.Time
}

// ValidSession reports whether s is one of the known sessions.
func ValidSession(s Session) bool {
	for _, known := range Sessions {
		if s == known {
			return true
		}
	}
	return false
}

// ValidEmotion reports whether e is one of the known emotions.
func ValidEmotion(e Emotion) bool {
	for _, known := range Emotions {
		if e == known {
			return true
		}
	}
	return false
}

// ValidOutcome reports whether o is a known outcome.
func ValidOutcome(o Outcome) bool {
	return o == Win || o == Loss || o == BreakEven
}

// ValidDirection reports whether d is a known direction.
func ValidDirection(d Direction) bool {
	return d == Buy || d == Sell
}
