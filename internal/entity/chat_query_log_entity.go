package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatQueryLog is a best-effort audit record of one chat turn.
type ChatQueryLog struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserId    string         `gorm:"type:varchar(100);index" json:"user_id"`
	Query     string         `gorm:"type:text;not null" json:"query"`
	Directive datatypes.JSON `gorm:"type:jsonb" json:"directive"`
	Blocks    datatypes.JSON `gorm:"type:jsonb" json:"blocks"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (ChatQueryLog) TableName() string {
	return "chat_query_logs"
}
