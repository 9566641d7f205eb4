package dto

import (
	"fmt"

	"github.com/projectdesk-api/models"
)

// CreateAccessRequestRequest is submitted by a project manager
type CreateAccessRequestRequest struct {
	RequestDescription string `json:"requestDescription"`
	PMName             string `json:"pmName" binding:"required"`
	UserID             uint   `json:"userId" binding:"required"`
	ProjectID          *uint  `json:"projectId"`
}

// DecideAccessRequestRequest grants or denies a request
type DecideAccessRequestRequest struct {
	Allowed *bool `json:"allowed" binding:"required"`
}

// AccessRequestSummary is the lightweight list view of an access request
type AccessRequestSummary struct {
	ID                 uint   `json:"id"`
	PMName             string `json:"pmName"`
	RequestDescription string `json:"requestDescription"`
	UserID             uint   `json:"userId"`
	ProjectID          *uint  `json:"projectId"`
	Allowed            bool   `json:"allowed"`
	Updated            bool   `json:"updated"`
	PMNotified         bool   `json:"pmNotified"`
}

// AccessRequestResponse is the projection of a request plus its decision message
type AccessRequestResponse struct {
	ID                 uint   `json:"id"`
	PMName             string `json:"pmName"`
	RequestDescription string `json:"requestDescription"`
	Message            string `json:"message"`
	Allowed            bool   `json:"allowed"`
	Updated            bool   `json:"updated"`
	Notified           bool   `json:"notified"`
	UserID             uint   `json:"userId"`
	UserName           string `json:"userName"`
	ProjectID          *uint  `json:"projectId,omitempty"`
	ProjectName        string `json:"projectName,omitempty"`
}

// DecisionMessage renders the human-readable outcome for a subject user
func DecisionMessage(userName string, allowed bool) string {
	if allowed {
		return fmt.Sprintf("Request for adding %s has been granted", userName)
	}
	return fmt.Sprintf("Request for adding %s has been denied", userName)
}

// NewAccessRequestSummary converts an access request into its list view
func NewAccessRequestSummary(r models.AccessRequest) AccessRequestSummary {
	return AccessRequestSummary{
		ID:                 r.ID,
		PMName:             r.PMName,
		RequestDescription: r.RequestDescription,
		UserID:             r.UserID,
		ProjectID:          r.ProjectID,
		Allowed:            r.Allowed,
		Updated:            r.Updated,
		PMNotified:         r.PMNotified,
	}
}

// AccessRequestSummaries converts a list of access requests, preserving order
func AccessRequestSummaries(requests []models.AccessRequest) []AccessRequestSummary {
	out := make([]AccessRequestSummary, 0, len(requests))
	for _, r := range requests {
		out = append(out, NewAccessRequestSummary(r))
	}
	return out
}

// NewAccessRequestResponse converts an access request into its response view.
// The message follows Allowed only, so an undecided request reads as denied.
func NewAccessRequestResponse(r models.AccessRequest) AccessRequestResponse {
	resp := AccessRequestResponse{
		ID:                 r.ID,
		PMName:             r.PMName,
		RequestDescription: r.RequestDescription,
		Message:            DecisionMessage(r.User.Name, r.Allowed),
		Allowed:            r.Allowed,
		Updated:            r.Updated,
		Notified:           r.PMNotified,
		UserID:             r.UserID,
		UserName:           r.User.Name,
		ProjectID:          r.ProjectID,
	}
	if r.Project != nil {
		resp.ProjectName = r.Project.Name
	}
	return resp
}

// MapToResponseViews converts a list of access requests, preserving order
func MapToResponseViews(requests []models.AccessRequest) []AccessRequestResponse {
	out := make([]AccessRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, NewAccessRequestResponse(r))
	}
	return out
}
