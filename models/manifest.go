// Package models defines the persisted entity shapes for the manifest ledger.
package models

// Invoice is a single fiscal note attached to a manifest. Freight is derived
// from the invoice value and the owning manifest's rate at mutation time; it
// is stored, never recomputed on read.
type Invoice struct {
	ID          string  `json:"id"`
	Number      string  `json:"number"`
	CompanyName string  `json:"companyName"`
	Value       float64 `json:"value"`
	Freight     float64 `json:"freight"`
}

// Manifest is one dated freight manifest (romaneio) that exclusively owns its
// invoices. Date is an ISO YYYY-MM-DD string so lexicographic order matches
// chronological order.
type Manifest struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	FreightRate float64   `json:"freightRate"` // percentage, e.g. 2 means 2%
	Invoices    []Invoice `json:"invoices"`
	CreatedAt   int64     `json:"createdAt"` // unix milliseconds, bookkeeping only
}

// Clone returns a deep copy, including the invoice slice.
func (m Manifest) Clone() Manifest {
	out := m
	out.Invoices = make([]Invoice, len(m.Invoices))
	copy(out.Invoices, m.Invoices)
	return out
}

// AppSettings holds the mutable defaults applied to newly created manifests.
type AppSettings struct {
	DefaultFreightRate float64 `json:"defaultFreightRate"`
}

// DefaultFreightRate is the rate used before the user configures one.
const DefaultFreightRate = 2

// DefaultSettings returns the settings used when nothing has been persisted.
func DefaultSettings() AppSettings {
	return AppSettings{DefaultFreightRate: DefaultFreightRate}
}
