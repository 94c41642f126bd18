package model

type ResourceType string

const (
	ResourcePDF     ResourceType = "pdf"
	ResourceDoc     ResourceType = "doc"
	ResourceImage   ResourceType = "image"
	ResourceLink    ResourceType = "link"
	ResourceArticle ResourceType = "article"
)

// Resource 小组共享资料
// swagger:model Resource
type Resource struct {
	UUIDBase
	GroupID       string       `gorm:"index;type:varchar(36);not null" json:"groupId"`
	UploaderID    uint         `gorm:"index;type:bigint unsigned" json:"uploaderId"`
	Uploader      *User        `gorm:"foreignKey:UploaderID" json:"uploader,omitempty"`
	Title         string       `gorm:"size:255;not null" json:"title"`
	Description   string       `gorm:"type:text" json:"description"`
	Type          ResourceType `gorm:"size:20;not null" json:"type"`
	FileURL       string       `gorm:"size:255" json:"fileUrl"`
	DownloadCount int          `gorm:"default:0" json:"downloadCount"`
}

func (Resource) TableName() string {
	return "resources"
}
