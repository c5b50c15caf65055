package gateway

import (
	"encoding/json"
	"sync"
)

// Hub tracks local socket membership: which clients sit in which rooms, plus
// a reverse index from user id to that user's sockets on this instance.
// Delivery to other instances goes over the bus, never through the hub.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
	users map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]struct{}),
		users: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.users[client.userID] == nil {
		h.users[client.userID] = make(map[*Client]struct{})
	}
	h.users[client.userID][client] = struct{}{}
}

// Unregister removes the client from every room and the user index, and
// closes its send channel so the write pump drains out.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for room, members := range h.rooms {
		if _, ok := members[client]; !ok {
			continue
		}
		delete(members, client)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}

	if sockets, ok := h.users[client.userID]; ok {
		if _, present := sockets[client]; present {
			delete(sockets, client)
			close(client.send)
		}
		if len(sockets) == 0 {
			delete(h.users, client.userID)
		}
	}
}

func (h *Hub) Join(room string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][client] = struct{}{}
}

func (h *Hub) Leave(room string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(members, client)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

// JoinUserSockets joins every local socket of the given users to the room.
func (h *Hub) JoinUserSockets(room string, userIDs []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, userID := range userIDs {
		for client := range h.users[userID] {
			if h.rooms[room] == nil {
				h.rooms[room] = make(map[*Client]struct{})
			}
			h.rooms[room][client] = struct{}{}
		}
	}
}

// EmitRoom marshals the payload once and fans it out to every local member
// of the room. Marshal failures are reported so callers can log them.
func (h *Hub) EmitRoom(room, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	h.EmitRoomRaw(room, event, data)
	return nil
}

// EmitRoomRaw fans an already-encoded payload out to the room. A client
// whose send buffer is full is dropped rather than allowed to stall the
// rest of the room.
func (h *Hub) EmitRoomRaw(room, event string, payload json.RawMessage) {
	frame, err := json.Marshal(WsEvent{Event: event, Data: payload})
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.rooms[room] {
		select {
		case client.send <- frame:
		default:
			h.evictLocked(client)
		}
	}
}

// EmitUser delivers an event to every local socket of a single user.
func (h *Hub) EmitUser(userID, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	frame, err := json.Marshal(WsEvent{Event: event, Data: data})
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.users[userID] {
		select {
		case client.send <- frame:
		default:
			h.evictLocked(client)
		}
	}
	return nil
}

// Emit sends an event to a single client, dropping it if its buffer is full.
func (h *Hub) Emit(client *Client, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	frame, err := json.Marshal(WsEvent{Event: event, Data: data})
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// The client may have been evicted between dispatch and this emit; its
	// send channel is closed then, so only deliver while it is still indexed.
	if _, ok := h.users[client.userID][client]; !ok {
		return nil
	}

	select {
	case client.send <- frame:
	default:
		h.evictLocked(client)
	}
	return nil
}

// evictLocked removes a stalled client everywhere and closes its channel.
// Callers must hold the write lock.
func (h *Hub) evictLocked(client *Client) {
	for room, members := range h.rooms {
		delete(members, client)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}

	if sockets, ok := h.users[client.userID]; ok {
		if _, present := sockets[client]; present {
			delete(sockets, client)
			close(client.send)
		}
		if len(sockets) == 0 {
			delete(h.users, client.userID)
		}
	}
}
