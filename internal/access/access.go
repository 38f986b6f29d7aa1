// Package access resolves the admin and moderator capabilities of a chat user.
package access

import "strings"

// Roles holds configured user ids. It is read-only after construction.
type Roles struct {
	admins     map[string]struct{}
	moderators map[string]struct{}
}

// New builds Roles from id lists. An empty moderator list grants the
// moderator capability to everyone; admins are always moderators.
func New(adminIDs, moderatorIDs []string) *Roles {
	return &Roles{
		admins:     toSet(adminIDs),
		moderators: toSet(moderatorIDs),
	}
}

// OpenModeration reports whether no moderator list is configured, so every
// user holds the moderator capability.
func (r *Roles) OpenModeration() bool {
	return len(r.moderators) == 0
}

func (r *Roles) IsAdmin(userID string) bool {
	_, ok := r.admins[userID]
	return ok
}

func (r *Roles) IsModerator(userID string) bool {
	if r.IsAdmin(userID) || r.OpenModeration() {
		return true
	}
	_, ok := r.moderators[userID]
	return ok
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}
