package tui

import (
	"errors"
	"testing"

	"github.com/avrillon/roomscout/pkg/api"
)

func TestFetchStateHappyPath(t *testing.T) {
	var s fetchState[[]string]
	gen := s.begin()

	if !s.loading {
		t.Fatal("expected loading=true after begin")
	}
	s.resolve(gen, []string{"a"}, nil, "fallback")
	if s.loading {
		t.Error("expected loading=false after resolve")
	}
	if s.err != "" {
		t.Errorf("expected no error, got %q", s.err)
	}
	if len(s.data) != 1 || s.data[0] != "a" {
		t.Errorf("expected data [a], got %v", s.data)
	}
}

func TestFetchStateStaleGenerationDiscarded(t *testing.T) {
	var s fetchState[[]string]
	oldGen := s.begin()
	s.begin()

	s.resolve(oldGen, []string{"stale"}, nil, "fallback")
	if !s.loading {
		t.Error("a stale response must not clear the loading state")
	}
	if s.data != nil {
		t.Errorf("a stale response must not install data, got %v", s.data)
	}
}

func TestFetchStateErrorKeepsPreviousData(t *testing.T) {
	var s fetchState[[]string]
	gen := s.begin()
	s.resolve(gen, []string{"a"}, nil, "fallback")

	gen = s.begin()
	s.resolve(gen, nil, errors.New("boom"), "fallback message")
	if s.err != "fallback message" {
		t.Errorf("expected fallback message, got %q", s.err)
	}
	if len(s.data) != 1 {
		t.Errorf("expected previous data kept on failure, got %v", s.data)
	}
}

func TestFetchStateServerMessagePreferred(t *testing.T) {
	var s fetchState[[]string]
	gen := s.begin()
	s.resolve(gen, nil, &api.APIError{Status: 400, Message: "Missing parameters"}, "fallback")
	if s.err != "Missing parameters" {
		t.Errorf("expected server message, got %q", s.err)
	}
}
