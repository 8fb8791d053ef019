package records

import (
	"encoding/json"
	"strings"
	"time"
)

// IdentityDocument is an uploaded identity document of a user.
type IdentityDocument struct {
	ID              string
	Type            string
	Number          string
	Status          string
	RejectionReason string
	HasFront        bool
	HasBack         bool
	UploadedAt      *time.Time
}

type identityDocumentJSON struct {
	ID              text      `json:"id"`
	Type            string    `json:"document_type"`
	Number          string    `json:"document_number"`
	Status          string    `json:"status"`
	RejectionReason string    `json:"rejection_reason"`
	FrontImageURL   string    `json:"front_image_url"`
	BackImageURL    string    `json:"back_image_url"`
	UploadedAt      timestamp `json:"uploaded_at"`
}

func (d *IdentityDocument) UnmarshalJSON(b []byte) error {
	var j identityDocumentJSON
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	*d = IdentityDocument{
		ID:              string(j.ID),
		Type:            j.Type,
		Number:          j.Number,
		Status:          j.Status,
		RejectionReason: j.RejectionReason,
		HasFront:        strings.TrimSpace(j.FrontImageURL) != "",
		HasBack:         strings.TrimSpace(j.BackImageURL) != "",
		UploadedAt:      j.UploadedAt.v,
	}
	return nil
}

// UserDetail is the client detail view: the user plus recent activity and
// identity documents.
type UserDetail struct {
	User
	RecentTransactions []Transaction
	IdentityDocuments  []IdentityDocument
}

type userDetailJSON struct {
	RecentTransactions []json.RawMessage `json:"recent_transactions"`
	IdentityDocuments  []json.RawMessage `json:"identity_documents"`
}

func (d *UserDetail) UnmarshalJSON(b []byte) error {
	var u User
	if err := json.Unmarshal(b, &u); err != nil {
		return err
	}
	var j userDetailJSON
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	*d = UserDetail{
		User:               u,
		RecentTransactions: decodeEach[Transaction](j.RecentTransactions),
		IdentityDocuments:  decodeEach[IdentityDocument](j.IdentityDocuments),
	}
	return nil
}

// PendingDocument is one entry of the admin document review queue.
type PendingDocument struct {
	UserID             string
	UserName           string
	Email              string
	Phone              string
	DocumentType       string
	DocumentNumber     string
	DocumentURL        string
	VerificationStatus string
	SubmittedAt        *time.Time
}

type pendingDocumentJSON struct {
	UserID             text      `json:"user_id"`
	UserName           string    `json:"user_name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	DocumentType       string    `json:"id_document_type"`
	DocumentNumber     string    `json:"id_document_number"`
	DocumentURL        string    `json:"id_document_url"`
	VerificationStatus string    `json:"verification_status"`
	SubmittedAt        timestamp `json:"submitted_date"`
}

func (p *PendingDocument) UnmarshalJSON(b []byte) error {
	var j pendingDocumentJSON
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	*p = PendingDocument{
		UserID:             string(j.UserID),
		UserName:           strings.TrimSpace(j.UserName),
		Email:              j.Email,
		Phone:              j.Phone,
		DocumentType:       j.DocumentType,
		DocumentNumber:     j.DocumentNumber,
		DocumentURL:        j.DocumentURL,
		VerificationStatus: j.VerificationStatus,
		SubmittedAt:        j.SubmittedAt.v,
	}
	return nil
}
