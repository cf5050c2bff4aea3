package preview_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-markup/pkg/preview"
)

type fakeDriver struct {
	confirms []confirmStep
	infos    []string
}

type confirmStep struct {
	answer bool
	err    error
}

func (d *fakeDriver) Confirm(_ context.Context, _ preview.ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return false, nil
	}
	step := d.confirms[0]
	d.confirms = d.confirms[1:]
	return step.answer, step.err
}

func (d *fakeDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestSession_SingleRound(t *testing.T) {
	sc, err := preview.Load([]byte(scenarioDoc))
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}

	// Flags prompt in sorted order (is_admin, is_premium), then the
	// render-again prompt declines.
	driver := &fakeDriver{confirms: []confirmStep{
		{answer: true},
		{answer: false},
		{answer: false},
	}}

	session, err := preview.NewSession(sc, preview.WithDriver(driver))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := []string{
		`badge: <span class="admin">ADMIN</span>`,
		"bio: <em>staff</em>",
	}
	if diff := cmp.Diff(want, driver.infos); diff != "" {
		t.Fatalf("session output mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_SecondRoundUsesAdjustedFlags(t *testing.T) {
	sc, err := preview.Load([]byte(scenarioDoc))
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}

	driver := &fakeDriver{confirms: []confirmStep{
		{answer: true}, {answer: false}, // round one flags
		{answer: true},                  // render again
		{answer: false}, {answer: true}, // round two flags
		{answer: false}, // stop
	}}

	session, err := preview.NewSession(sc, preview.WithDriver(driver))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := []string{
		`badge: <span class="admin">ADMIN</span>`,
		"bio: <em>staff</em>",
		"badge: PRO &amp; more",
		"bio: ",
	}
	if diff := cmp.Diff(want, driver.infos); diff != "" {
		t.Fatalf("session output mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_AbortIsCleanExit(t *testing.T) {
	sc, err := preview.Load([]byte(scenarioDoc))
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}

	driver := &fakeDriver{confirms: []confirmStep{
		{err: preview.ErrAborted},
	}}

	session, err := preview.NewSession(sc, preview.WithDriver(driver))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("aborted run should return nil, got %v", err)
	}
	if len(driver.infos) != 0 {
		t.Fatalf("aborted session still rendered: %v", driver.infos)
	}
}

func TestNewSession_RequiresScenario(t *testing.T) {
	if _, err := preview.NewSession(nil); err == nil {
		t.Fatal("expected error for nil scenario")
	}
}
