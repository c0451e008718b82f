package types

// Document formats accepted by the registry.
const (
	DocumentFormatManual = "MANUAL"
	DocumentFormatXml    = "XML"
	DocumentFormatCsv    = "CSV"
)

// Submission types.
const (
	DocTypeIntroduceGoods = "LP_INTRODUCE_GOODS"
)

// Product groups of regulated goods.
const (
	ProductGroupClothes    = "clothes"
	ProductGroupShoes      = "shoes"
	ProductGroupTobacco    = "tobacco"
	ProductGroupPerfumery  = "perfumery"
	ProductGroupTires      = "tires"
	ProductGroupElectronic = "electronics"
	ProductGroupMilk       = "milk"
	ProductGroupBicycle    = "bicycle"
)

// Document is a commissioning document for goods produced in Russia.
// The nested ProductDocument is the business payload; the client
// serializes and base64-encodes it without interpreting its fields.
type Document struct {
	DocumentFormat  string          `json:"document_format" validate:"required,oneof=MANUAL XML CSV"`
	ProductDocument ProductDocument `json:"product_document"`
	ProductGroup    string          `json:"product_group" validate:"required"`
	Signature       string          `json:"signature"`
	Type            string          `json:"type" validate:"required"`
}

type ProductDocument struct {
	Description    *Description `json:"description,omitempty"`
	DocId          string       `json:"doc_id"`
	DocStatus      string       `json:"doc_status"`
	DocType        string       `json:"doc_type"`
	ImportRequest  bool         `json:"importRequest"`
	OwnerInn       string       `json:"owner_inn" validate:"required"`
	ParticipantInn string       `json:"participant_inn" validate:"required"`
	ProducerInn    string       `json:"producer_inn" validate:"required"`
	ProductionDate Date         `json:"production_date"`
	ProductionType string       `json:"production_type"`
	Products       []Product    `json:"products"`
	RegDate        Date         `json:"reg_date"`
	RegNumber      string       `json:"reg_number"`
}

type Description struct {
	ParticipantInn string `json:"participantInn"`
}

type Product struct {
	CertificateDocument       string `json:"certificate_document"`
	CertificateDocumentDate   Date   `json:"certificate_document_date"`
	CertificateDocumentNumber string `json:"certificate_document_number"`
	OwnerInn                  string `json:"owner_inn"`
	ProducerInn               string `json:"producer_inn"`
	ProductionDate            Date   `json:"production_date"`
	TnvedCode                 string `json:"tnved_code"`
	UitCode                   string `json:"uit_code"`
	UituCode                  string `json:"uitu_code"`
}

// CreateDocumentRequest is the wire body of a submission. ProductDocument
// carries the base64 of the canonical JSON serialization of the nested
// business payload.
type CreateDocumentRequest struct {
	ProductDocument string `json:"product_document"`
	DocumentFormat  string `json:"document_format"`
	Type            string `json:"type"`
	Signature       string `json:"signature"`
}

// CreateDocumentResponse carries the identifier the registry assigned
// to an accepted document.
type CreateDocumentResponse struct {
	Value string `json:"value"`
}
