package api

import "time"

// ContractType classifies the uploaded contract for analysis.
type ContractType string

const (
	ContractFreelancer ContractType = "FREELANCER"
	ContractEmployment ContractType = "EMPLOYMENT"
	ContractPartTime   ContractType = "PART_TIME"
	ContractLease      ContractType = "LEASE"
	ContractNDA        ContractType = "NDA"
	ContractOther      ContractType = "OTHER"
)

// ContractTypes lists every accepted contract type in display order.
var ContractTypes = []ContractType{
	ContractFreelancer,
	ContractEmployment,
	ContractPartTime,
	ContractLease,
	ContractNDA,
	ContractOther,
}

// Valid reports whether t is one of the accepted contract types.
func (t ContractType) Valid() bool {
	for _, v := range ContractTypes {
		if t == v {
			return true
		}
	}
	return false
}

// UserProfile describes who is reading the contract, which steers the
// analysis toward the risks that matter for that reader.
type UserProfile string

const (
	ProfileStudent            UserProfile = "STUDENT"
	ProfileEntryLevel         UserProfile = "ENTRY_LEVEL"
	ProfileFreelancer         UserProfile = "FREELANCER"
	ProfileIndividualBusiness UserProfile = "INDIVIDUAL_BUSINESS"
	ProfileGeneralConsumer    UserProfile = "GENERAL_CONSUMER"
)

// UserProfiles lists every accepted user profile in display order.
var UserProfiles = []UserProfile{
	ProfileStudent,
	ProfileEntryLevel,
	ProfileFreelancer,
	ProfileIndividualBusiness,
	ProfileGeneralConsumer,
}

// Valid reports whether p is one of the accepted user profiles.
func (p UserProfile) Valid() bool {
	for _, v := range UserProfiles {
		if p == v {
			return true
		}
	}
	return false
}

// RiskLabel is the risk category the analysis engine assigns to a clause.
type RiskLabel string

const (
	LabelWarning RiskLabel = "WARNING"
	LabelCheck   RiskLabel = "CHECK"
	LabelOK      RiskLabel = "OK"
)

// DocumentStatus tracks where a document is in the upload/analysis
// lifecycle, as last reported by the server.
type DocumentStatus string

const (
	StatusUploaded   DocumentStatus = "uploaded"
	StatusProcessing DocumentStatus = "processing"
	StatusCompleted  DocumentStatus = "completed"
	StatusFailed     DocumentStatus = "failed"
)

// Document is the server's record of an uploaded file. The client only
// ever holds a transient copy; the server owns the lifecycle.
type Document struct {
	DocumentID       string         `json:"documentId"`
	OriginalFileName string         `json:"originalFileName"`
	ContentType      string         `json:"contentType"`
	SizeBytes        int64          `json:"sizeBytes"`
	CreatedAt        time.Time      `json:"createdAt"`
	Status           DocumentStatus `json:"status,omitempty"`
	ExtractedText    string         `json:"extractedText,omitempty"`
	TextLength       int            `json:"textLength,omitempty"`
	TextSha256       string         `json:"textSha256,omitempty"`
}

// Extraction reports the outcome of server-side text extraction.
type Extraction struct {
	DocumentID string `json:"documentId"`
	TextLength int    `json:"textLength"`
	TextSha256 string `json:"textSha256"`
}

// OverallSummary carries the per-label clause counts and key points as
// computed by the analysis engine. The counts are served as-is and are
// never recomputed from Items on this side.
type OverallSummary struct {
	WarningCount int      `json:"warningCount"`
	CheckCount   int      `json:"checkCount"`
	OkCount      int      `json:"okCount"`
	KeyPoints    []string `json:"keyPoints"`
}

// ClauseItem is one analyzed clause. Identity is (analysisId, clauseId);
// the clause id is stable across fetches of the same analysis.
type ClauseItem struct {
	ClauseID       string    `json:"clauseId"`
	Title          string    `json:"title"`
	Label          RiskLabel `json:"label"`
	RiskReason     string    `json:"riskReason"`
	WhatToConfirm  []string  `json:"whatToConfirm"`
	SoftSuggestion []string  `json:"softSuggestion"`
	Triggers       []string  `json:"triggers"`
}

// AnalysisResult is one completed risk assessment. Immutable once
// created; fetched by id thereafter.
type AnalysisResult struct {
	AnalysisID             string         `json:"analysisId"`
	OverallSummary         OverallSummary `json:"overallSummary"`
	Items                  []ClauseItem   `json:"items"`
	NegotiationSuggestions []string       `json:"negotiationSuggestions"`
	Disclaimer             string         `json:"disclaimer"`
}
