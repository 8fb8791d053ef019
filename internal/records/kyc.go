package records

import "strings"

// KYCStatus is the derived identity verification status of a user.
type KYCStatus string

const (
	KYCVerified     KYCStatus = "verified"
	KYCPending      KYCStatus = "pending"
	KYCNotSubmitted KYCStatus = "not_submitted"
)

// KYCSignals are the inputs of DeriveKYC.
type KYCSignals struct {
	VerificationStatus string
	HasDocumentFront   bool
	HasDocumentBack    bool
	EmailVerified      bool
	PhoneVerified      bool
}

// DeriveKYC is the only place the console computes a KYC status.
//
// An explicit verification status wins: verified and pending map to
// themselves and rejected maps to not_submitted, so a rejected user is
// asked to submit again. Any other explicit value is ignored. Without one,
// both document sides plus a verified email or phone is verified, any
// document side is pending, and nothing is not_submitted.
func DeriveKYC(s KYCSignals) KYCStatus {
	switch strings.ToLower(strings.TrimSpace(s.VerificationStatus)) {
	case "verified":
		return KYCVerified
	case "pending":
		return KYCPending
	case "rejected":
		return KYCNotSubmitted
	}

	switch {
	case s.HasDocumentFront && s.HasDocumentBack:
		if s.EmailVerified || s.PhoneVerified {
			return KYCVerified
		}
		return KYCPending
	case s.HasDocumentFront || s.HasDocumentBack:
		return KYCPending
	default:
		return KYCNotSubmitted
	}
}

// KYCSignals extracts the derivation inputs from the user's profile.
func (u User) KYCSignals() KYCSignals {
	if u.Profile == nil {
		return KYCSignals{}
	}
	return KYCSignals{
		VerificationStatus: u.Profile.VerificationStatus,
		HasDocumentFront:   u.Profile.HasDocumentFront,
		HasDocumentBack:    u.Profile.HasDocumentBack,
		EmailVerified:      u.Profile.EmailVerified,
		PhoneVerified:      u.Profile.PhoneVerified,
	}
}

// KYC derives the user's KYC status.
func (u User) KYC() KYCStatus {
	return DeriveKYC(u.KYCSignals())
}

// KYC of a review queue entry, which only carries the explicit status and a
// single document image.
func (p PendingDocument) KYC() KYCStatus {
	return DeriveKYC(KYCSignals{
		VerificationStatus: p.VerificationStatus,
		HasDocumentFront:   strings.TrimSpace(p.DocumentURL) != "",
	})
}
