package session

import (
	"sort"

	"github.com/awesome-cap/hashmap"
)

var sessions = hashmap.New()

func registerSession(s *Session) {
	sessions.Set(s.ID, s)
}

func unregisterSession(s *Session) {
	sessions.Del(s.ID)
}

func Get(id string) *Session {
	if v, ok := sessions.Get(id); ok {
		return v.(*Session)
	}
	return nil
}

// Active lists running matches, oldest first.
func Active() []*Session {
	list := make([]*Session, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Session))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].StartedAt.Before(list[j].StartedAt)
	})
	return list
}
