// file: models/attempt_log.go
package models

import (
	"time"
)

type AttemptResult string

const (
	AttemptCorrect   AttemptResult = "correct"
	AttemptWrong     AttemptResult = "wrong"
	AttemptDuplicate AttemptResult = "duplicate"
	AttemptLocked    AttemptResult = "locked"
)

// AttemptLog 每次 Flag 提交的审计日志，答错的也记，仅管理员可查
type AttemptLog struct {
	ID            uint64        `gorm:"primarykey" json:"id"`
	TeamID        uint32        `gorm:"not null;index" json:"team_id"`
	ChallengeID   string        `gorm:"size:100;not null" json:"challenge_id"`
	SubmittedFlag string        `gorm:"size:255" json:"submitted_flag"`
	Result        AttemptResult `gorm:"size:20;not null" json:"result"`
	IPAddress     string        `gorm:"size:45" json:"ip_address"`
	SubmittedAt   time.Time     `json:"submitted_at"`
}

func (AttemptLog) TableName() string {
	return "gotctf_attempt_log"
}
