// Package domain defines the persistence models for users, contact messages,
// and budget requests. These types are mapped with GORM and form the core
// data layer of the solar lead-generation backend.
package domain

import "time"

// Roof covering types accepted on a budget request. Free-form values are
// rejected at the service layer; "other" is the catch-all.
const (
	RoofCeramic     = "ceramic"
	RoofMetal       = "metal"
	RoofConcrete    = "concrete"
	RoofFiberCement = "fiber-cement"
	RoofOther       = "other"
)

// ValidRoofType reports whether t is one of the accepted roof types.
func ValidRoofType(t string) bool {
	switch t {
	case RoofCeramic, RoofMetal, RoofConcrete, RoofFiberCement, RoofOther:
		return true
	}
	return false
}

// User is a visitor account backing the auth flow. Login itself is handled by
// an external OAuth server; this table only mirrors what the session cookie
// references.
//
// Fields:
//   - ID: opaque unique string primary key assigned by the auth provider.
//   - Role: "user" or "admin" (enforced by DB constraint).
//   - CreatedAt / LastSignedIn: managed server-side.
type User struct {
	ID           string    `json:"id"             gorm:"type:varchar(64);primaryKey"`
	Name         string    `json:"name"           gorm:"type:varchar(255)"`
	Email        string    `json:"email"          gorm:"type:varchar(320)"`
	LoginMethod  string    `json:"login_method"   gorm:"type:varchar(64)"`
	Role         string    `json:"role"           gorm:"type:varchar(16);not null;default:'user';check:role IN ('user','admin')"`
	CreatedAt    time.Time `json:"created_at"`
	LastSignedIn time.Time `json:"last_signed_in"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Contact is one submitted contact-form message. Rows are created once on a
// successful submission and never mutated or deleted by this system.
//
// Fields:
//   - ID: UUID primary key (char(36)), server-assigned.
//   - Name / Email / Phone / Subject / Message: all required, validated
//     before insert.
//   - CreatedAt: server-assigned UTC timestamp.
type Contact struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name"       gorm:"type:varchar(255);not null"`
	Email     string    `json:"email"      gorm:"type:varchar(320);not null"`
	Phone     string    `json:"phone"      gorm:"type:varchar(20);not null"`
	Subject   string    `json:"subject"    gorm:"type:varchar(255);not null"`
	Message   string    `json:"message"    gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName returns the database table name for Contact.
func (Contact) TableName() string { return "contacts" }

// Budget is one submitted quote request together with the financial estimate
// derived from its raw inputs. Monetary fields are stored as integer centavos
// to avoid floating-point drift; the estimate is recomputed server-side at
// submission time from MonthlyConsumptionKwh and RoofAreaM2, so the stored
// derived fields are always consistent with the raw inputs.
//
// Rows are created once and read-only thereafter.
type Budget struct {
	ID                    string `json:"id"                      gorm:"type:char(36);primaryKey"`
	Name                  string `json:"name"                    gorm:"type:varchar(255);not null"`
	Email                 string `json:"email"                   gorm:"type:varchar(320);not null"`
	Phone                 string `json:"phone"                   gorm:"type:varchar(20);not null"`
	MonthlyConsumptionKwh int    `json:"monthly_consumption_kwh" gorm:"not null;check:monthly_consumption_kwh > 0"`
	RoofAreaM2            int    `json:"roof_area_m2"            gorm:"not null;check:roof_area_m2 > 0"`
	RoofType              string `json:"roof_type"               gorm:"type:varchar(100);not null"`
	Location              string `json:"location"                gorm:"type:varchar(255);not null"`

	// Derived financials in integer centavos.
	EstimatedCostCents           int64 `json:"estimated_cost_cents"`
	EstimatedMonthlySavingsCents int64 `json:"estimated_monthly_savings_cents"`
	PaybackPeriodMonths          int   `json:"payback_period_months"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName returns the database table name for Budget.
func (Budget) TableName() string { return "budgets" }
