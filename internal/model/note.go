package model

// Note 学习笔记，可属于小组（组内共享）或仅个人可见
// swagger:model Note
type Note struct {
	UUIDBase
	GroupID  *string `gorm:"index;type:varchar(36)" json:"groupId,omitempty"`
	AuthorID uint    `gorm:"index;type:bigint unsigned" json:"authorId"`
	Author   *User   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Title    string  `gorm:"size:255;not null" json:"title"`
	Content  string  `gorm:"type:text" json:"content"`
	Tags     string  `gorm:"size:255" json:"tags"`
	FromAI   bool    `gorm:"default:false" json:"fromAi"` // 是否由 AI 生成
}

func (Note) TableName() string {
	return "notes"
}

// Flashcard 记忆卡片，可挂在某条笔记下
type Flashcard struct {
	UUIDBase
	NoteID   *string `gorm:"index;type:varchar(36)" json:"noteId,omitempty"`
	AuthorID uint    `gorm:"index;type:bigint unsigned" json:"authorId"`
	Front    string  `gorm:"type:text;not null" json:"front"`
	Back     string  `gorm:"type:text" json:"back"`
	FromAI   bool    `gorm:"default:false" json:"fromAi"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}
