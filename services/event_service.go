// file: services/event_service.go
package services

import (
	"context"

	"GOTCTF/models"

	"github.com/google/uuid"
)

type EventType string

const (
	EventGameState  EventType = "game_state"
	EventSolve      EventType = "solve"
	EventTeamStatus EventType = "team_status"
)

// Event 推送给客户端的事件。Revision 单调递增（闸门事件用 GameState 的
// 修订号，队伍事件用该队的修订号），客户端丢弃小于等于已见值的推送。
type Event struct {
	Type     EventType   `json:"type"`
	Revision uint64      `json:"revision"`
	Payload  interface{} `json:"payload,omitempty"`
}

type brokerMsg interface{ isBrokerMsg() }

type subscribeMsg struct {
	id string
	ch chan Event
}

type unsubscribeMsg struct {
	id string
}

type publishMsg struct {
	ev Event
}

type shutdownMsg struct{}

func (subscribeMsg) isBrokerMsg()   {}
func (unsubscribeMsg) isBrokerMsg() {}
func (publishMsg) isBrokerMsg()     {}
func (shutdownMsg) isBrokerMsg()    {}

// Broker 单 goroutine 持有全部订阅者状态，外界只通过 inbox 通道交互，
// 不加锁。发布从不阻塞：消费不过来的订阅者直接丢事件，由修订号兜底。
type Broker struct {
	inbox       chan brokerMsg
	subscribers map[string]chan Event
	ctx         context.Context
	cancel      context.CancelFunc
}

func NewBroker(parent context.Context) *Broker {
	ctx, cancel := context.WithCancel(parent)
	b := &Broker{
		inbox:       make(chan brokerMsg, 64),
		subscribers: make(map[string]chan Event),
		ctx:         ctx,
		cancel:      cancel,
	}
	go b.loop()
	return b
}

func (b *Broker) loop() {
	for {
		select {
		case <-b.ctx.Done():
			return

		case m := <-b.inbox:
			switch msg := m.(type) {
			case subscribeMsg:
				b.subscribers[msg.id] = msg.ch

			case unsubscribeMsg:
				if ch, ok := b.subscribers[msg.id]; ok {
					delete(b.subscribers, msg.id)
					close(ch)
				}

			case publishMsg:
				for _, ch := range b.subscribers {
					select {
					case ch <- msg.ev:
					default: // 订阅者太慢，丢弃
					}
				}

			case shutdownMsg:
				for id, ch := range b.subscribers {
					delete(b.subscribers, id)
					close(ch)
				}
				b.cancel()
			}
		}
	}
}

// Subscribe 注册一个订阅者，返回其 id 和事件通道
func (b *Broker) Subscribe() (string, <-chan Event) {
	id := uuid.NewString()
	ch := make(chan Event, 16)
	b.inbox <- subscribeMsg{id: id, ch: ch}
	return id, ch
}

// Unsubscribe 注销订阅者并关闭其通道
func (b *Broker) Unsubscribe(id string) {
	b.inbox <- unsubscribeMsg{id: id}
}

// Publish 广播一个事件
func (b *Broker) Publish(ev Event) {
	b.inbox <- publishMsg{ev: ev}
}

// Shutdown 关闭全部订阅者
func (b *Broker) Shutdown() {
	b.inbox <- shutdownMsg{}
}

// Events 进程级单例，main 里初始化；为 nil 时（如单测）发布助手全部空转
var Events *Broker

func InitEvents(ctx context.Context) {
	Events = NewBroker(ctx)
}

// PublishGameState 闸门变更事件
func PublishGameState(gs models.GameState) {
	if Events == nil {
		return
	}
	Events.Publish(Event{Type: EventGameState, Revision: gs.Revision, Payload: gs})
}

// PublishSolve 某队计分账本变更事件（解题、完赛、重置共用）
func PublishSolve(teamID uint32, teamName string, revision uint64) {
	if Events == nil {
		return
	}
	Events.Publish(Event{Type: EventSolve, Revision: revision, Payload: map[string]interface{}{
		"team_id":   teamID,
		"team_name": teamName,
	}})
}

// PublishTeamStatus 封禁/解封事件
func PublishTeamStatus(team models.Team) {
	if Events == nil {
		return
	}
	Events.Publish(Event{Type: EventTeamStatus, Revision: team.Revision, Payload: map[string]interface{}{
		"team_id":   team.ID,
		"team_name": team.TeamName,
		"status":    team.Status,
	}})
}
