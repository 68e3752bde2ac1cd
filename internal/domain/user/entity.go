package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrActorRequired = errors.New("actor id is required")

// Actor is the authenticated caller of a write operation.
// Accounts themselves live in the identity service; only the id and role reach this service.
type Actor struct {
	id   uuid.UUID
	role Role
}

func NewActor(id uuid.UUID, role Role) (Actor, error) {
	if id == uuid.Nil {
		return Actor{}, ErrActorRequired
	}
	if !role.IsValid() {
		return Actor{}, ErrInvalidRole
	}
	return Actor{id: id, role: role}, nil
}

func (a Actor) ID() uuid.UUID { return a.id }
func (a Actor) Role() Role    { return a.role }
func (a Actor) IsAdmin() bool { return a.role == RoleAdmin }

// CanManage reports whether the actor may change rates of a listing owned by hostID.
func (a Actor) CanManage(hostID uuid.UUID) bool {
	return a.IsAdmin() || (a.id != uuid.Nil && a.id == hostID)
}
