package models

import "time"

type Appointment struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	PatientName    string    `json:"patient_name"`
	PatientContact string    `json:"patient_contact"`
	ScheduledAt    time.Time `json:"scheduled_at"`
	DoctorID       uint      `json:"doctor_id"`
	Doctor         Doctor    `json:"doctor" gorm:"foreignKey:DoctorID"`
}
