package document

import "time"

// Type is an identity-document category required before submission.
type Type string

const (
	TypeKTP  Type = "KTP"
	TypeKK   Type = "KK"
	TypeNPWP Type = "NPWP"
)

// RequiredForSubmit lists the document types a loan must carry at
// least one of each before it may leave DRAFT.
var RequiredForSubmit = []Type{TypeKTP, TypeKK, TypeNPWP}

// Document rows are written by the upload flow (out of scope here);
// the lifecycle only counts them.
type Document struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	LoanID    uint64    `gorm:"column:loan_id;not null;index:idx_documents_loan_type"`
	Type      Type      `gorm:"column:doc_type;size:16;not null;index:idx_documents_loan_type"`
	ObjectKey string    `gorm:"column:object_key;type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Document) TableName() string { return "loan_documents" }
