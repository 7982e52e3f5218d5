// Package store owns the authoritative in-memory manifest collection and
// keeps the persistence gateway in sync after every mutation.
//
// The store is built for a single logical actor: operations are synchronous
// and run to completion before the next one is invoked, so no locking is
// needed. Lookups by identifier treat "not found" as a normal, silently
// ignored case: identifiers come from a currently rendered list, and a miss
// means a stale reference, not corruption.
package store

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dtnitsch/romaneio/models"
	"github.com/dtnitsch/romaneio/pkg/freight"
)

// Gateway is the persistence contract the store depends on. Each save
// replaces the whole stored document; there are no partial writes.
type Gateway interface {
	LoadManifests() ([]models.Manifest, error)
	SaveManifests([]models.Manifest) error
	LoadSettings() (models.AppSettings, error)
	SaveSettings(models.AppSettings) error
}

type Store struct {
	gw        Gateway
	log       *slog.Logger
	manifests []models.Manifest
	settings  models.AppSettings
	onChange  func([]models.Manifest)
}

// New loads the persisted collection and settings into memory.
func New(gw Gateway, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	manifests, err := gw.LoadManifests()
	if err != nil {
		return nil, fmt.Errorf("failed to load manifests: %w", err)
	}
	settings, err := gw.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	s := &Store{
		gw:        gw,
		log:       logger,
		manifests: manifests,
		settings:  settings,
	}
	s.sortByDate()
	return s, nil
}

// SetOnChange registers an observer invoked with a fresh snapshot after every
// mutation, so a presentation layer can re-render without the store knowing
// about it.
func (s *Store) SetOnChange(fn func([]models.Manifest)) {
	s.onChange = fn
}

// Snapshot returns a deep copy of the collection in date-descending order.
// Callers may hand it to a concurrent reader (e.g. the summarizer) while the
// store keeps mutating.
func (s *Store) Snapshot() []models.Manifest {
	out := make([]models.Manifest, len(s.manifests))
	for i, m := range s.manifests {
		out[i] = m.Clone()
	}
	return out
}

// Settings returns the current default settings.
func (s *Store) Settings() models.AppSettings {
	return s.settings
}

// CreateManifest inserts a new empty manifest for the given ISO date and
// rate, keeping the collection sorted most recent first. The returned copy
// is valid even when the persistence write fails.
func (s *Store) CreateManifest(date string, rate float64) (models.Manifest, error) {
	m := models.Manifest{
		ID:          uuid.NewString(),
		Date:        date,
		FreightRate: rate,
		Invoices:    []models.Invoice{},
		CreatedAt:   time.Now().UnixMilli(),
	}
	s.manifests = append(s.manifests, m)
	s.sortByDate()
	return m.Clone(), s.persist()
}

// DeleteManifest removes the manifest and all invoices it owns. Absent IDs
// are a no-op. Confirmation of this destructive action is the caller's job.
func (s *Store) DeleteManifest(manifestID string) error {
	for i := range s.manifests {
		if s.manifests[i].ID == manifestID {
			s.manifests = append(s.manifests[:i], s.manifests[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// AddInvoice appends a new invoice to the named manifest, deriving freight
// from the manifest's current rate. found is false when the manifest does
// not exist, in which case nothing changes.
func (s *Store) AddInvoice(manifestID, number, companyName string, value float64) (inv models.Invoice, found bool, err error) {
	for i := range s.manifests {
		if s.manifests[i].ID != manifestID {
			continue
		}
		inv = models.Invoice{
			ID:          uuid.NewString(),
			Number:      number,
			CompanyName: companyName,
			Value:       value,
			Freight:     freight.Compute(value, s.manifests[i].FreightRate),
		}
		s.manifests[i].Invoices = append(s.manifests[i].Invoices, inv)
		return inv, true, s.persist()
	}
	return models.Invoice{}, false, nil
}

// DeleteInvoice removes the invoice from the named manifest. A miss on
// either identifier is a no-op.
func (s *Store) DeleteInvoice(manifestID, invoiceID string) error {
	for i := range s.manifests {
		if s.manifests[i].ID != manifestID {
			continue
		}
		invoices := s.manifests[i].Invoices
		for j := range invoices {
			if invoices[j].ID == invoiceID {
				s.manifests[i].Invoices = append(invoices[:j], invoices[j+1:]...)
				return s.persist()
			}
		}
		return nil
	}
	return nil
}

// ChangeRate sets the manifest's rate and recomputes freight for every
// invoice in it against each invoice's unchanged value. The new invoice
// slice is built completely before being swapped in, so an observer never
// sees a mix of old and new rates.
func (s *Store) ChangeRate(manifestID string, newRate float64) error {
	for i := range s.manifests {
		if s.manifests[i].ID != manifestID {
			continue
		}
		updated := make([]models.Invoice, len(s.manifests[i].Invoices))
		for j, inv := range s.manifests[i].Invoices {
			inv.Freight = freight.Compute(inv.Value, newRate)
			updated[j] = inv
		}
		s.manifests[i].FreightRate = newRate
		s.manifests[i].Invoices = updated
		return s.persist()
	}
	return nil
}

// SetDefaultRate updates the default rate applied to new manifests. Existing
// manifests are untouched.
func (s *Store) SetDefaultRate(rate float64) error {
	s.settings.DefaultFreightRate = rate
	if err := s.gw.SaveSettings(s.settings); err != nil {
		s.log.Error("store.save_settings_failed", "error", err)
		return err
	}
	return nil
}

// persist writes the whole collection back through the gateway. On failure
// the in-memory collection stays authoritative for the rest of the session;
// the error is surfaced so the caller can warn the user.
func (s *Store) persist() error {
	err := s.gw.SaveManifests(s.manifests)
	if err != nil {
		s.log.Error("store.save_manifests_failed", "error", err)
	}
	if s.onChange != nil {
		s.onChange(s.Snapshot())
	}
	return err
}

// sortByDate keeps the collection most recent first. The sort is stable so
// same-day manifests keep insertion order.
func (s *Store) sortByDate() {
	sort.SliceStable(s.manifests, func(i, j int) bool {
		return s.manifests[i].Date > s.manifests[j].Date
	})
}
