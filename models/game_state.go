// file: models/game_state.go
package models

import (
	"time"
)

// GameState 全局唯一的轮次闸门记录（id 固定为 1），首次读取时懒创建，
// 默认两轮都锁住。Revision 单调递增，推送事件用它做去旧。
type GameState struct {
	ID           uint32    `gorm:"primarykey" json:"-"`
	Round1Locked bool      `gorm:"not null;default:true" json:"round1_locked"`
	Round2Locked bool      `gorm:"not null;default:true" json:"round2_locked"`
	Revision     uint64    `gorm:"not null;default:1" json:"revision"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (GameState) TableName() string {
	return "gotctf_game_state"
}

// RoundLocked 查询某一轮是否上锁
func (gs *GameState) RoundLocked(r Round) bool {
	if r == Round1 {
		return gs.Round1Locked
	}
	return gs.Round2Locked
}
