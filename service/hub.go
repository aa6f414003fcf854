package service

import (
	"errors"
	"fmt"
)

// Hub starts services in registration order and stops them in reverse
type Hub struct {
	services []Service
	started  []Service
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{}
}

// Register appends a service; names must be unique
func (h *Hub) Register(s Service) error {
	for _, existing := range h.services {
		if existing.Name() == s.Name() {
			return fmt.Errorf("service %q already registered", s.Name())
		}
	}
	h.services = append(h.services, s)
	return nil
}

// StartAll starts every service, continuing past failures
// The returned error joins every start failure; failed services are skipped by StopAll
func (h *Hub) StartAll() error {
	var errs []error
	for _, s := range h.services {
		if err := s.Start(); err != nil {
			errs = append(errs, fmt.Errorf("start %s: %w", s.Name(), err))
			continue
		}
		h.started = append(h.started, s)
	}
	return errors.Join(errs...)
}

// StopAll stops started services in reverse start order
func (h *Hub) StopAll() error {
	var errs []error
	for i := len(h.started) - 1; i >= 0; i-- {
		s := h.started[i]
		if err := s.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", s.Name(), err))
		}
	}
	h.started = nil
	return errors.Join(errs...)
}

// Started reports whether the named service started successfully
func (h *Hub) Started(name string) bool {
	for _, s := range h.started {
		if s.Name() == name {
			return true
		}
	}
	return false
}
