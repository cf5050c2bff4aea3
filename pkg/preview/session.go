package preview

import (
	"context"
	"errors"
)

// SessionOption configures a Session before it runs.
type SessionOption func(*Session)

// WithDriver replaces the default survey-backed prompt driver.
func WithDriver(driver PromptDriver) SessionOption {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// Session drives an interactive render loop: prompt for each flag, render
// every slot, then offer another round.
type Session struct {
	scenario *Scenario
	driver   PromptDriver
}

// NewSession constructs a session for the scenario with the survey driver by
// default.
func NewSession(scenario *Scenario, options ...SessionOption) (*Session, error) {
	if scenario == nil {
		return nil, errors.New("preview: scenario is required")
	}
	s := &Session{
		scenario: scenario,
		driver:   newSurveyDriver(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s, nil
}

// Run loops until the user declines another round or interrupts a prompt.
// Prompt defaults carry the previous round's answers so repeated renders
// only need to flip the flag under inspection.
func (s *Session) Run(ctx context.Context) error {
	flags := make(map[string]bool, len(s.scenario.Flags))
	for name, value := range s.scenario.Flags {
		flags[name] = value
	}

	for {
		for _, name := range s.scenario.FlagNames() {
			value, err := s.driver.Confirm(ctx, ConfirmConfig{
				Message: name + "?",
				Default: flags[name],
			})
			if errors.Is(err, ErrAborted) {
				return nil
			}
			if err != nil {
				return err
			}
			flags[name] = value
		}

		rendered, err := s.scenario.Render(flags)
		if err != nil {
			return err
		}
		for _, slot := range s.scenario.SlotNames() {
			if err := s.driver.Info(ctx, slot+": "+string(rendered[slot])); err != nil {
				return err
			}
		}

		again, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: "Adjust flags and render again?",
			Default: false,
		})
		if errors.Is(err, ErrAborted) || (err == nil && !again) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
