// file: models/solve.go
package models

import (
	"time"
)

// Solve 每队每题至多一条：(team_id, challenge_id) 唯一索引在存储层兜底，
// 并发提交时输掉竞争的一方走"已解出"幂等路径，分数不会算两次。
type Solve struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	TeamID      uint32    `gorm:"not null;uniqueIndex:uq_team_challenge" json:"team_id"`
	ChallengeID string    `gorm:"size:100;not null;uniqueIndex:uq_team_challenge" json:"challenge_id"`
	Flag        string    `gorm:"size:255;not null" json:"flag"`
	Points      uint      `gorm:"not null" json:"points"`
	SolvedAt    time.Time `json:"solved_at"`
}

func (Solve) TableName() string {
	return "gotctf_solve"
}

// ComputeScore 解题账本求和，纯函数
func ComputeScore(solves []Solve) uint {
	var total uint
	for _, s := range solves {
		total += s.Points
	}
	return total
}
