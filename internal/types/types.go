// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Plan string

const (
	PlanFree       Plan = "FREE"
	PlanBasic      Plan = "BASIC"
	PlanPro        Plan = "PRO"
	PlanEnterprise Plan = "ENTERPRISE"
)

// DefaultMaxUsers returns the seat limit of a plan, 0 means unlimited.
func (p Plan) DefaultMaxUsers() int {
	switch p {
	case PlanFree:
		return 2
	case PlanBasic:
		return 5
	case PlanPro:
		return 15
	default:
		return 0
	}
}

func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanBasic, PlanPro, PlanEnterprise:
		return true
	}
	return false
}

type SubscriptionStatus string

const (
	SubscriptionTrial     SubscriptionStatus = "TRIAL"
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionPastDue   SubscriptionStatus = "PAST_DUE"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
)

type BillingCycle string

const (
	BillingMonthly BillingCycle = "MONTHLY"
	BillingYearly  BillingCycle = "YEARLY"
)

// Next returns the end of the period that starts at from.
func (c BillingCycle) Next(from time.Time) time.Time {
	if c == BillingYearly {
		return from.AddDate(1, 0, 0)
	}
	return from.AddDate(0, 1, 0)
}

type Subscription struct {
	Status          SubscriptionStatus `json:"status"`
	BillingCycle    BillingCycle       `json:"billing_cycle"`
	PeriodStart     *time.Time         `json:"period_start,omitempty"`
	PeriodEnd       *time.Time         `json:"period_end,omitempty"`
	MonthlyPrice    float64            `json:"monthly_price"`
	YearlyPrice     float64            `json:"yearly_price"`
	DiscountPercent float64            `json:"discount_percent"`
}

type Branding struct {
	PrimaryColor   string            `json:"primary_color,omitempty"`
	SecondaryColor string            `json:"secondary_color,omitempty"`
	Theme          string            `json:"theme,omitempty"`
	LogoFileID     string            `json:"logo_file_id,omitempty"`
	Settings       map[string]string `json:"settings,omitempty"`
}

type Tenant struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Slug             string       `json:"slug"`
	Plan             Plan         `json:"plan"`
	Active           bool         `json:"active"`
	Suspended        bool         `json:"suspended"`
	SuspensionReason string       `json:"suspension_reason,omitempty"`
	MaxUsers         *int         `json:"max_users,omitempty"`
	Branding         Branding     `json:"branding"`
	Subscription     Subscription `json:"subscription"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
	DeactivatedAt    *time.Time   `json:"deactivated_at,omitempty"`
}

// SeatLimit resolves the override against the plan default, 0 means unlimited.
func (t *Tenant) SeatLimit() int {
	if t.MaxUsers != nil {
		return *t.MaxUsers
	}
	return t.Plan.DefaultMaxUsers()
}

// Usable reports whether tenant members may operate on the tenant.
func (t *Tenant) Usable() bool {
	return t.Active && !t.Suspended
}

type BillingPayment struct {
	ID           string       `json:"id"`
	TenantID     string       `json:"tenant_id"`
	Amount       float64      `json:"amount"`
	Method       string       `json:"method"`
	BillingCycle BillingCycle `json:"billing_cycle"`
	PeriodStart  time.Time    `json:"period_start"`
	PeriodEnd    time.Time    `json:"period_end"`
	Notes        string       `json:"notes,omitempty"`
	RecordedBy   string       `json:"recorded_by"`
	CreatedAt    time.Time    `json:"created_at"`
}

type MonthRevenue struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

type RevenueSummary struct {
	From    time.Time        `json:"from"`
	To      time.Time        `json:"to"`
	Total   float64          `json:"total"`
	ByMonth []MonthRevenue   `json:"by_month"`
	ByPlan  map[Plan]float64 `json:"by_plan"`
}

type Role string

const (
	RoleWorker     Role = "WORKER"
	RoleCashier    Role = "CASHIER"
	RoleAdmin      Role = "ADMIN"
	RoleOwner      Role = "OWNER"
	RoleSuperAdmin Role = "SUPERADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleWorker, RoleCashier, RoleAdmin, RoleOwner, RoleSuperAdmin:
		return true
	}
	return false
}

type User struct {
	ID              string    `json:"id"`
	Subject         string    `json:"subject"`
	Username        string    `json:"username"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Role            Role      `json:"role"`
	Active          bool      `json:"active"`
	DefaultTenantID string    `json:"default_tenant_id,omitempty"`
	ViewingTenantID string    `json:"viewing_tenant_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Membership struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	Role        Role      `json:"role"`
	Permissions []string  `json:"permissions"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CustomerType string

const (
	CustomerCash    CustomerType = "CASH"
	CustomerRegular CustomerType = "REGULAR"
	CustomerCompany CustomerType = "COMPANY"
)

func (c CustomerType) Valid() bool {
	switch c {
	case CustomerCash, CustomerRegular, CustomerCompany:
		return true
	}
	return false
}

type Customer struct {
	ID        string       `json:"id"`
	TenantID  string       `json:"tenant_id"`
	Name      string       `json:"name"`
	Phone     string       `json:"phone,omitempty"`
	Address   string       `json:"address,omitempty"`
	Type      CustomerType `json:"customer_type"`
	Balance   float64      `json:"balance"`
	Notes     string       `json:"notes,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type PricingMethod string

const (
	PricingArea   PricingMethod = "AREA"
	PricingLength PricingMethod = "LENGTH"
)

func (p PricingMethod) Valid() bool {
	return p == PricingArea || p == PricingLength
}

type GlassType struct {
	ID            string        `json:"id"`
	TenantID      string        `json:"tenant_id"`
	Name          string        `json:"name"`
	Thickness     float64       `json:"thickness"`
	Color         string        `json:"color,omitempty"`
	UnitPrice     float64       `json:"unit_price"`
	PricingMethod PricingMethod `json:"pricing_method"`
	Active        bool          `json:"active"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// RateKind names a thickness banded rate table.
type RateKind string

const (
	RateLaser    RateKind = "LASER"
	RateBeveling RateKind = "BEVELING"
)

func (k RateKind) Valid() bool {
	return k == RateLaser || k == RateBeveling
}

type ThicknessRate struct {
	ID            string    `json:"id"`
	TenantID      string    `json:"tenant_id"`
	Kind          RateKind  `json:"kind"`
	MinThickness  float64   `json:"min_thickness"`
	MaxThickness  float64   `json:"max_thickness"`
	PricePerMeter float64   `json:"price_per_meter"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Contains reports whether thickness falls inside the closed band.
func (r *ThicknessRate) Contains(thickness float64) bool {
	return thickness >= r.MinThickness && thickness <= r.MaxThickness
}

// Overlaps reports whether the closed bands [min,max] intersect.
func (r *ThicknessRate) Overlaps(min, max float64) bool {
	return max >= r.MinThickness && min <= r.MaxThickness
}

type OperationPrice struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Category  string    `json:"category"`
	Subtype   string    `json:"subtype"`
	Price     float64   `json:"price"`
	Unit      string    `json:"unit"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "PENDING"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

type WorkStatus string

const (
	WorkPending    WorkStatus = "PENDING"
	WorkInProgress WorkStatus = "IN_PROGRESS"
	WorkCompleted  WorkStatus = "COMPLETED"
	WorkCancelled  WorkStatus = "CANCELLED"
)

func (w WorkStatus) Valid() bool {
	switch w {
	case WorkPending, WorkInProgress, WorkCompleted, WorkCancelled:
		return true
	}
	return false
}

type TreatmentType string

const (
	TreatmentBeveling TreatmentType = "BEVELING"
	TreatmentLaser    TreatmentType = "LASER"
	TreatmentSanding  TreatmentType = "SANDING"
	TreatmentManual   TreatmentType = "MANUAL"
)

// LineOperation is the persisted snapshot of one priced edge treatment.
type LineOperation struct {
	Type         TreatmentType `json:"type"`
	Method       string        `json:"method,omitempty"`
	Diameter     *float64      `json:"diameter,omitempty"`
	ManualMeters *float64      `json:"manual_meters,omitempty"`
	ManualPrice  *float64      `json:"manual_price,omitempty"`
	Meters       float64       `json:"meters"`
	Rate         float64       `json:"rate"`
	RateFallback bool          `json:"rate_fallback,omitempty"`
	Cost         float64       `json:"cost"`
}

type InvoiceLine struct {
	ID             string          `json:"id"`
	InvoiceID      string          `json:"invoice_id"`
	TenantID       string          `json:"tenant_id"`
	Position       int             `json:"position"`
	GlassTypeID    string          `json:"glass_type_id"`
	GlassName      string          `json:"glass_name"`
	GlassThickness float64         `json:"glass_thickness"`
	GlassColor     string          `json:"glass_color,omitempty"`
	UnitPrice      float64         `json:"unit_price"`
	PricingMethod  PricingMethod   `json:"pricing_method"`
	Width          float64         `json:"width"`
	Height         float64         `json:"height"`
	Unit           string          `json:"unit"`
	Quantity       int             `json:"quantity"`
	AreaM2         float64         `json:"area_m2"`
	LengthM        float64         `json:"length_m"`
	GlassCost      float64         `json:"glass_cost"`
	OperationsCost float64         `json:"operations_cost"`
	Total          float64         `json:"total"`
	Operations     []LineOperation `json:"operations"`
	Status         WorkStatus      `json:"status"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type Invoice struct {
	ID               string         `json:"id"`
	TenantID         string         `json:"tenant_id"`
	Number           string         `json:"number"`
	CustomerID       string         `json:"customer_id"`
	CustomerName     string         `json:"customer_name,omitempty"`
	Status           InvoiceStatus  `json:"status"`
	WorkStatus       WorkStatus     `json:"work_status"`
	TotalPrice       float64        `json:"total_price"`
	AmountPaidNow    float64        `json:"amount_paid_now"`
	AmountPaid       float64        `json:"amount_paid"`
	RemainingBalance float64        `json:"remaining_balance"`
	Notes            string         `json:"notes,omitempty"`
	CreatedBy        string         `json:"created_by"`
	IssuedAt         time.Time      `json:"issued_at"`
	PaidAt           *time.Time     `json:"paid_at,omitempty"`
	CancelledAt      *time.Time     `json:"cancelled_at,omitempty"`
	Lines            []*InvoiceLine `json:"lines,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type InvoiceFilter struct {
	CustomerID string
	Status     InvoiceStatus
	WorkStatus WorkStatus
	From       *time.Time
	To         *time.Time
	Page       int64
	Size       int64
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentCheque   PaymentMethod = "CHEQUE"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentCheque:
		return true
	}
	return false
}

type Payment struct {
	ID         string        `json:"id"`
	TenantID   string        `json:"tenant_id"`
	CustomerID string        `json:"customer_id"`
	InvoiceID  string        `json:"invoice_id,omitempty"`
	Amount     float64       `json:"amount"`
	Method     PaymentMethod `json:"method"`
	Notes      string        `json:"notes,omitempty"`
	RecordedBy string        `json:"recorded_by"`
	PaidAt     time.Time     `json:"paid_at"`
	CreatedAt  time.Time     `json:"created_at"`
}

type PrintJobType string

const (
	PrintSticker      PrintJobType = "STICKER"
	PrintInvoice      PrintJobType = "INVOICE"
	PrintFactoryOrder PrintJobType = "FACTORY_ORDER"
)

func (p PrintJobType) Valid() bool {
	switch p {
	case PrintSticker, PrintInvoice, PrintFactoryOrder:
		return true
	}
	return false
}

type PrintJobStatus string

const (
	PrintQueued     PrintJobStatus = "QUEUED"
	PrintProcessing PrintJobStatus = "PROCESSING"
	PrintPrinting   PrintJobStatus = "PRINTING"
	PrintPrinted    PrintJobStatus = "PRINTED"
	PrintFailed     PrintJobStatus = "FAILED"
)

type PrintJob struct {
	ID          string         `json:"id"`
	TenantID    string         `json:"tenant_id"`
	ReadableID  string         `json:"readable_id"`
	InvoiceID   string         `json:"invoice_id"`
	LineID      string         `json:"line_id,omitempty"`
	Type        PrintJobType   `json:"type"`
	Status      PrintJobStatus `json:"status"`
	Attempts    int            `json:"attempts"`
	FileID      string         `json:"file_id,omitempty"`
	Error       string         `json:"error,omitempty"`
	CreatedBy   string         `json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}

type Notification struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id"`
	TargetUserID string    `json:"target_user_id,omitempty"`
	Kind         string    `json:"kind"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	EntityType   string    `json:"entity_type,omitempty"`
	EntityID     string    `json:"entity_id,omitempty"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"created_at"`
}

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Change is one field level difference recorded in an audit entry.
type Change struct {
	From interface{} `json:"from"`
	To   interface{} `json:"to"`
}

type AuditLog struct {
	ID         string            `json:"id"`
	TenantID   string            `json:"tenant_id,omitempty"`
	ActorID    string            `json:"actor_id"`
	Action     string            `json:"action"`
	EntityType string            `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	Changes    map[string]Change `json:"changes,omitempty"`
	Severity   Severity          `json:"severity"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

type AuditFilter struct {
	EntityType string
	EntityID   string
	Action     string
	Page       int64
	Size       int64
}

type FilePurpose string

const (
	FileLogo     FilePurpose = "LOGO"
	FilePrintPDF FilePurpose = "PRINT_PDF"
)

func (f FilePurpose) Valid() bool {
	return f == FileLogo || f == FilePrintPDF
}

type StoredFile struct {
	ID          string      `json:"id"`
	TenantID    string      `json:"tenant_id"`
	Purpose     FilePurpose `json:"purpose"`
	ContentType string      `json:"content_type"`
	Size        int64       `json:"size"`
	Data        []byte      `json:"-"`
	CreatedBy   string      `json:"created_by"`
	CreatedAt   time.Time   `json:"created_at"`
}

// RevenueRow is one aggregated billing bucket.
type RevenueRow struct {
	Month string  `json:"month"`
	Plan  Plan    `json:"plan"`
	Total float64 `json:"total"`
}

type PaymentFilter struct {
	CustomerID string
	InvoiceID  string
	Page       int64
	Size       int64
}

type PrintJobFilter struct {
	InvoiceID string
	Status    PrintJobStatus
	Page      int64
	Size      int64
}
