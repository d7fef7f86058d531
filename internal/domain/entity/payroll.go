package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is a payroll entry; not every employee has a login.
type Employee struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FirstName      string         `gorm:"size:255;not null" json:"first_name"`
	LastName       string         `gorm:"size:255;not null" json:"last_name"`
	Position       string         `gorm:"size:100" json:"position"`
	Phone          *string        `gorm:"size:50" json:"phone,omitempty"`
	MonthlySalUSD  int64          `gorm:"not null" json:"-"` // cents
	Active         bool           `json:"active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Payments []SalaryPayment `gorm:"foreignKey:EmployeeID" json:"-"`
}

// MarshalJSON converts cent-denominated amounts to decimals for API responses.
func (e Employee) MarshalJSON() ([]byte, error) {
	type Alias Employee
	return json.Marshal(&struct {
		Alias
		MonthlySalaryUSD float64 `json:"monthly_salary_usd"`
	}{
		Alias:            Alias(e),
		MonthlySalaryUSD: float64(e.MonthlySalUSD) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}

// SalaryPayment records one salary payment for a period (YYYY-MM).
type SalaryPayment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_salary_employee_period,unique" json:"employee_id"`
	Period     string    `gorm:"size:7;not null;index:idx_salary_employee_period,unique" json:"period"`
	AmountUSD  int64     `gorm:"not null" json:"-"` // cents
	PaidByID   uuid.UUID `gorm:"type:uuid;not null" json:"paid_by_id"`
	PaidAt     time.Time `gorm:"not null" json:"paid_at"`
	Note       string    `gorm:"size:255" json:"note"`
	CreatedAt  time.Time `json:"created_at"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// MarshalJSON converts cent-denominated amounts to decimals for API responses.
func (p SalaryPayment) MarshalJSON() ([]byte, error) {
	type Alias SalaryPayment
	return json.Marshal(&struct {
		Alias
		AmountUSD float64 `json:"amount_usd"`
	}{
		Alias:     Alias(p),
		AmountUSD: float64(p.AmountUSD) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new salary payment
func (p *SalaryPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalaryPayment model
func (SalaryPayment) TableName() string {
	return "salary_payments"
}
