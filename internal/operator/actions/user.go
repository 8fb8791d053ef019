package actions

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrMissingUser   = errors.New("user id is required")
	ErrMissingReason = errors.New("a rejection reason is required")
	ErrBadDecision   = errors.New("decision must be approve or reject")
)

// ToggleUserStatus activates an inactive client or deactivates an active one.
type ToggleUserStatus struct {
	Token  string
	UserID string

	Message string
}

func (a *ToggleUserStatus) Perform(ctx context.Context, env Env) error {
	if strings.TrimSpace(a.UserID) == "" {
		return ErrMissingUser
	}

	msg, err := env.Upstream.ToggleUserStatus(ctx, a.Token, a.UserID)
	if err != nil {
		return err
	}
	a.Message = msg
	return nil
}

type DocumentDecision string

const (
	DocumentApprove DocumentDecision = "approve"
	DocumentReject  DocumentDecision = "reject"
)

// ReviewDocument approves or rejects a client's identity document.
type ReviewDocument struct {
	Token      string
	UserID     string
	Decision   DocumentDecision
	Reason     string
	DocumentID string

	Message string
}

func (a *ReviewDocument) Perform(ctx context.Context, env Env) error {
	if strings.TrimSpace(a.UserID) == "" {
		return ErrMissingUser
	}

	var (
		msg string
		err error
	)
	switch a.Decision {
	case DocumentApprove:
		msg, err = env.Upstream.ApproveDocument(ctx, a.Token, a.UserID)
	case DocumentReject:
		reason := strings.TrimSpace(a.Reason)
		if reason == "" {
			return ErrMissingReason
		}
		msg, err = env.Upstream.RejectDocument(ctx, a.Token, a.UserID, reason, a.DocumentID)
	default:
		return ErrBadDecision
	}
	if err != nil {
		return err
	}
	a.Message = msg
	return nil
}
