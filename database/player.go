package database

import (
	"fmt"
	stringx "strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/uno/session"
)

// Player is a remote human connected over TCP or WebSocket.
type Player struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Score int64  `json:"score"`

	conn    *network.Conn
	data    chan *protocol.Packet
	read    atomic.Bool
	state   consts.StateID
	online  atomic.Bool
	writeMu sync.Mutex
	mu      sync.Mutex
	session *session.Session
}

func (p *Player) Write(bytes []byte) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	return p.conn.Write(protocol.Packet{
		Body: bytes,
	})
}

// Offline saves and closes the player's game, then releases the connection.
func (p *Player) Offline() {
	p.online.Store(false)
	_ = p.conn.Close()
	close(p.data)
	if s := p.Session(); s != nil {
		CloseSession(s)
	}
	players.Del(p.ID)
}

// Disconnect closes the connection, which ends Listening.
func (p *Player) Disconnect() {
	_ = p.conn.Close()
}

func (p *Player) Listening() error {
	for {
		pack, err := p.conn.Read()
		if err != nil {
			log.Error(err)
			return err
		}
		if p.read.Load() {
			p.data <- pack
		}
	}
}

func (p *Player) WriteString(data string) error {
	return p.Write([]byte(data))
}

func (p *Player) WriteError(err error) error {
	if err == consts.ErrorsExist {
		return err
	}
	return p.Write([]byte(err.Error() + "\n"))
}

func (p *Player) AskForPacket(timeout ...time.Duration) (*protocol.Packet, error) {
	p.StartTransaction()
	defer p.StopTransaction()
	return p.askForPacket(timeout...)
}

func (p *Player) askForPacket(timeout ...time.Duration) (*protocol.Packet, error) {
	var packet *protocol.Packet
	if len(timeout) > 0 {
		select {
		case packet = <-p.data:
		case <-time.After(timeout[0]):
			return nil, consts.ErrorsTimeout
		}
	} else {
		packet = <-p.data
	}
	if packet == nil {
		return nil, consts.ErrorsChanClosed
	}
	single := stringx.ToLower(stringx.TrimSpace(packet.String()))
	if single == "exit" || single == "e" {
		return nil, consts.ErrorsExist
	}
	return packet, nil
}

func (p *Player) AskForString(timeout ...time.Duration) (string, error) {
	packet, err := p.AskForPacket(timeout...)
	if err != nil {
		return "", err
	}
	return stringx.TrimSpace(packet.String()), nil
}

func (p *Player) StartTransaction() {
	p.read.Store(true)
	_ = p.WriteString(consts.IsStart)
}

func (p *Player) StopTransaction() {
	p.read.Store(false)
	_ = p.WriteString(consts.IsStop)
}

func (p *Player) State(s consts.StateID) {
	p.state = s
}

func (p *Player) GetState() consts.StateID {
	return p.state
}

func (p *Player) Conn(conn *network.Conn) {
	p.conn = conn
	p.data = make(chan *protocol.Packet, 8)
	p.online.Store(true)
}

func (p *Player) Online() bool {
	return p.online.Load()
}

// Attach binds the player to the game it is playing.
func (p *Player) Attach(s *session.Session) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.session = s
}

func (p *Player) Session() *session.Session {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session
}

func (p *Player) String() string {
	return fmt.Sprintf("%s[%d]", p.Name, p.ID)
}
