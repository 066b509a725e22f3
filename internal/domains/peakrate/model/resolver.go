package model

import (
	"time"

	"stayhub/shared/failure"
)

var ErrInvalidBasePrice = failure.DataIntegrity("room type base price must be between 1 and 9999999999")

type Resolution struct {
	Price int64
	Rule  *PeakRateRule
}

// Effective picks the rule that prices day. When several rules cover it the most recently
// written one wins, so the pick does not depend on the order of rules.
func Effective(rules []PeakRateRule, day time.Time) *PeakRateRule {
	var effective *PeakRateRule

	for idx := range rules {
		if !rules[idx].Covers(day) {
			continue
		}

		if effective == nil || rules[idx].supersedes(*effective) {
			effective = &rules[idx]
		}
	}

	return effective
}

// Resolve prices day from basePrice and the rules of one room type.
func Resolve(rules []PeakRateRule, day time.Time, basePrice int64) (Resolution, error) {
	if basePrice <= 0 || basePrice > MaxPrice {
		return Resolution{}, ErrInvalidBasePrice
	}

	rule := Effective(rules, day)
	if rule == nil {
		return Resolution{Price: basePrice}, nil
	}

	applied := *rule

	return Resolution{Price: applied.Apply(basePrice), Rule: &applied}, nil
}
