package models

import "time"

// AccessRequestState is the lifecycle stage of an access request
type AccessRequestState string

const (
	AccessRequestPending      AccessRequestState = "PENDING"
	AccessRequestDecided      AccessRequestState = "DECIDED"
	AccessRequestAcknowledged AccessRequestState = "ACKNOWLEDGED"
)

// AccessRequest asks that a user be added to a project. It moves
// PENDING -> DECIDED -> ACKNOWLEDGED and is only removed by a bulk clear.
type AccessRequest struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	PMName             string    `json:"pmName" gorm:"column:pm_name;index;not null"`
	RequestDescription string    `json:"requestDescription" gorm:"type:text"`
	Allowed            bool      `json:"allowed" gorm:"not null"`
	Updated            bool      `json:"updated" gorm:"not null"`
	PMNotified         bool      `json:"pmNotified" gorm:"column:pm_notified;not null"`
	UserID             uint      `json:"userId" gorm:"not null;index"`
	ProjectID          *uint     `json:"projectId" gorm:"index"`
	CreatedAt          time.Time `json:"createdAt"`

	// Relations
	User    User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

// State derives the lifecycle stage from the decision flags
func (r *AccessRequest) State() AccessRequestState {
	switch {
	case r.Updated && r.PMNotified:
		return AccessRequestAcknowledged
	case r.Updated:
		return AccessRequestDecided
	default:
		return AccessRequestPending
	}
}

// Decide records the decision. Deciding again overwrites the previous outcome.
func (r *AccessRequest) Decide(allowed bool) {
	r.Allowed = allowed
	r.Updated = true
}

// MarkNotified records that the project manager has seen the outcome
func (r *AccessRequest) MarkNotified() {
	r.PMNotified = true
}
