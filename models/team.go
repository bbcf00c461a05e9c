// file: models/team.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type TeamRole string
type TeamStatus string

const (
	RoleParticipant TeamRole = "participant"
	RoleAdmin       TeamRole = "admin"

	StatusActive TeamStatus = "active"
	StatusBanned TeamStatus = "banned"
)

// Team 队伍记录。封禁只改 Status，数据永不物理删除。
type Team struct {
	ID              uint32     `gorm:"primarykey" json:"id"`
	TeamName        string     `gorm:"size:100;unique;not null" json:"team_name"`
	Email           string     `gorm:"size:100;unique;not null" json:"email"`
	Password        string     `gorm:"size:255;not null" json:"-"`
	TeamMember1     string     `gorm:"size:50;not null" json:"team_member1"`
	TeamMember2     string     `gorm:"size:50;not null" json:"team_member2"`
	TeamMember3     string     `gorm:"size:50;not null" json:"team_member3"`
	CollegeName     string     `gorm:"size:100;not null" json:"college_name"`
	Role            TeamRole   `gorm:"size:20;not null;default:'participant'" json:"role"`
	Status          TeamStatus `gorm:"size:20;not null;default:'active'" json:"status"`
	Round1Completed bool       `gorm:"not null;default:false" json:"round1_completed"`
	Round2Completed bool       `gorm:"not null;default:false" json:"round2_completed"`
	// Revision 在每次计分变更（解题、完赛、重置）时 +1，推送事件带上它，
	// 客户端据此丢弃乱序的旧推送
	Revision  uint64    `gorm:"not null;default:0" json:"revision"`
	Solves    []Solve   `gorm:"foreignKey:TeamID" json:"solves,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Team) TableName() string {
	return "gotctf_team"
}

// BeforeSave GORM Hook，在保存前自动哈希密码
func (t *Team) BeforeSave(tx *gorm.DB) (err error) {
	if t.ID == 0 || tx.Statement.Changed("Password") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(t.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		t.Password = string(hashedPassword)
	}
	return
}

// CheckPassword 校验密码是否正确
func (t *Team) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(t.Password), []byte(password))
	return err == nil
}

// RoundCompleted 查询某一轮的完赛标记
func (t *Team) RoundCompleted(r Round) bool {
	if r == Round1 {
		return t.Round1Completed
	}
	return t.Round2Completed
}

// Score 从解题账本推导总分，无副作用
func (t *Team) Score() uint {
	return ComputeScore(t.Solves)
}
