package models

import "time"

// Status is the stored workflow state of a certification. It is not
// derived from the due date; a record can sit at StatusPending while
// already past due.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"
	StatusAtRisk    Status = "at-risk"
)

// Priority of a certification
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// CertType classifies the regulatory work a certification covers
type CertType string

const (
	TypeHomologation CertType = "homologation"
	TypeWarranty     CertType = "warranty"
	TypeTesting      CertType = "testing"
	TypeCompliance   CertType = "compliance"
	TypeRenewal      CertType = "renewal"
	TypeOther        CertType = "other"
)

// ModelStatus is the lifecycle state of a tire model
type ModelStatus string

const (
	ModelActive       ModelStatus = "active"
	ModelDeprecated   ModelStatus = "deprecated"
	ModelDiscontinued ModelStatus = "discontinued"
	ModelPending      ModelStatus = "pending"
)

// User is immutable reference data for assignment and display
type User struct {
	ID         string
	Name       string
	Email      string
	Department string
	Avatar     string
}

// Specifications is the technical spec block of a tire model
type Specifications struct {
	Size        string
	Type        string
	LoadIndex   string
	SpeedRating string
	Season      string
}

// TireModel is the product entity certifications are issued against
type TireModel struct {
	ID            string
	Name          string
	Manufacturer  string
	LaunchDate    time.Time
	EndOfLifeDate time.Time
	Value         int64
	Status        ModelStatus
	OwnerID       string
	Specs         Specifications
}

// Task is a sub-step of a certification. It has no lifecycle of its
// own; it is owned exclusively by its parent certification.
type Task struct {
	ID          string
	Description string
	DueDate     time.Time
	Completed   bool
	AssignedTo  string
}

// Certification is a compliance obligation tied to a tire model
type Certification struct {
	ID            string
	TireModelID   string
	TireModelName string // denormalized for display
	Description   string
	DueDate       time.Time
	Status        Status
	AssignedTo    string
	Priority      Priority
	Type          CertType
	Region        string
	Body          string
	Standards     []string
	Tasks         []Task
}
