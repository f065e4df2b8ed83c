package entities

const (
	MediaProviderLocal = "local"
	MediaProviderS3    = "aws-s3"
)

type Media struct {
	Document
	Name            string `json:"name"`
	URL             string `gorm:"size:1024" json:"url"`
	AlternativeText string `json:"alternative_text"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	Mime            string `json:"mime"`
	Provider        string `gorm:"size:32;default:local" json:"provider"`
	ProviderKey     string `gorm:"size:1024" json:"provider_key,omitempty"`

	Timestamp
}
